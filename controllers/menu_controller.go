package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"guesthouse-manager/middleware"
	"guesthouse-manager/models"
	"guesthouse-manager/services"
	"guesthouse-manager/storage"
	"guesthouse-manager/utils"
	"guesthouse-manager/validation"
)

// MenuController drives the interactive terminal menu. Each menu option has
// one handler; input is validated here so the services only ever see
// well-formed values.
type MenuController struct {
	GH           *services.Guesthouse
	Rooms        *services.RoomService
	Products     *services.ProductService
	Reservations *services.ReservationService
	Billing      *services.BillingService
	Store        storage.Store

	reader    *bufio.Reader
	validator *validation.Validator
}

func NewMenuController(
	gh *services.Guesthouse,
	rooms *services.RoomService,
	products *services.ProductService,
	reservations *services.ReservationService,
	billing *services.BillingService,
	store storage.Store,
) *MenuController {
	return &MenuController{
		GH:           gh,
		Rooms:        rooms,
		Products:     products,
		Reservations: reservations,
		Billing:      billing,
		Store:        store,
		reader:       bufio.NewReader(os.Stdin),
		validator:    validation.New(),
	}
}

// ----------------------------------------------------
// Prompt helpers
// ----------------------------------------------------

func (mc *MenuController) promptLine(label string) string {
	fmt.Print(label)
	line, _ := mc.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

type guestInput struct {
	Name string `validate:"required"`
}

func (mc *MenuController) promptGuest() string {
	for {
		name := mc.promptLine("Nome do cliente: ")
		if err := mc.validator.Validate(guestInput{Name: name}); err != nil {
			utils.PrintError("Nao foi digitado o nome do cliente")
			continue
		}
		return name
	}
}

type dateInput struct {
	Date string `validate:"required,datetime=02-01-2006"`
}

func (mc *MenuController) promptDate(label string) time.Time {
	for {
		text := mc.promptLine(label)
		if err := mc.validator.Validate(dateInput{Date: text}); err != nil {
			utils.PrintError("Data invalida, use o formato DD-MM-AAAA")
			continue
		}
		date, _ := utils.ParseDate(text)
		return date
	}
}

// promptOptionalDate accepts an empty line as "no criterion".
func (mc *MenuController) promptOptionalDate(label string) *time.Time {
	for {
		text := mc.promptLine(label)
		if text == "" {
			return nil
		}
		if err := mc.validator.Validate(dateInput{Date: text}); err != nil {
			utils.PrintError("Data invalida, use o formato DD-MM-AAAA")
			continue
		}
		date, _ := utils.ParseDate(text)
		return &date
	}
}

func (mc *MenuController) promptRoomNumber() int {
	for {
		text := mc.promptLine("Numero do quarto: ")
		number, err := strconv.Atoi(text)
		if err != nil {
			utils.PrintError("Nao foi digitado o numero de um quarto")
			continue
		}
		if _, err := mc.Rooms.Find(number); err != nil {
			utils.PrintError("Esse quarto nao existe")
			continue
		}
		return number
	}
}

func (mc *MenuController) promptOptionalRoomNumber() int {
	for {
		text := mc.promptLine("Numero do quarto: ")
		if text == "" {
			return 0
		}
		number, err := strconv.Atoi(text)
		if err != nil {
			utils.PrintError("Nao foi digitado o numero de um quarto")
			continue
		}
		if _, err := mc.Rooms.Find(number); err != nil {
			utils.PrintError("Esse quarto nao existe")
			continue
		}
		return number
	}
}

func (mc *MenuController) pause() {
	mc.promptLine("\nPressione Enter para voltar ao menu...")
}

// ----------------------------------------------------
// 1. Availability (room free over a date range?)
// ----------------------------------------------------

func (mc *MenuController) Availability() error {
	fmt.Println("====== Consulta de disponibilidade ======")
	start := mc.promptDate("Data inicial da reserva (DD-MM-AAAA): ")
	end := mc.promptDate("Data final da reserva (DD-MM-AAAA): ")
	number := mc.promptRoomNumber()

	free, err := mc.Reservations.IsAvailable(number, start, end)
	if err != nil {
		utils.PrintError("Esse quarto nao existe")
		return err
	}
	if !free {
		utils.PrintEllipsis("\nQuarto indisponivel nesta data")
		return nil
	}

	room, _ := mc.Rooms.Find(number)
	utils.PrintSuccess("\nQuarto disponivel :)")
	mc.printRoom(room)
	return nil
}

// ----------------------------------------------------
// 2. Query reservations
// ----------------------------------------------------

func (mc *MenuController) QueryReservations() error {
	fmt.Println("====== Consulta de reserva ======")
	filter := services.ReservationFilter{
		Guest:      mc.promptLine("Nome do cliente: "),
		Start:      mc.promptOptionalDate("Data inicial reserva (DD-MM-AAAA): "),
		End:        mc.promptOptionalDate("Data final reserva (DD-MM-AAAA): "),
		RoomNumber: mc.promptOptionalRoomNumber(),
	}

	matches, err := mc.Reservations.Query(filter, models.StatusActive)
	switch {
	case errors.Is(err, services.ErrEmptyFilter):
		utils.PrintError("Pelo menos uma informacao deve ser fornecida")
		return err
	case errors.Is(err, services.ErrNoReservations):
		utils.PrintEllipsis("\nNao foram encontradas reservas ativas")
		return nil
	case err != nil:
		return err
	}

	utils.PrintSuccess("\nReservas encontradas:")
	for _, res := range matches {
		mc.printReservation(res)
	}
	return nil
}

// ----------------------------------------------------
// 3. Make reservation
// ----------------------------------------------------

func (mc *MenuController) MakeReservation() error {
	fmt.Println("====== Realizar reserva ======")
	guest := mc.promptGuest()
	start := mc.promptDate("Data inicial da reserva (DD-MM-AAAA): ")
	end := mc.promptDate("Data final da reserva (DD-MM-AAAA): ")
	number := mc.promptRoomNumber()

	res, err := mc.Reservations.MakeReservation(guest, start, end, number)
	switch {
	case errors.Is(err, services.ErrGuestHasActiveStay):
		utils.PrintEllipsis("\nCliente ja possui reserva ativa")
		return err
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.PrintEllipsis("\nQuarto esta indisponivel nessa data")
		return err
	case errors.Is(err, services.ErrInvalidPeriod):
		utils.PrintError("Data final anterior a data inicial")
		return err
	case err != nil:
		return err
	}

	utils.PrintSuccess("\nReserva realizada com sucesso")
	fmt.Printf("Codigo: %s\n", res.ReferenceCode)
	return nil
}

// ----------------------------------------------------
// 4. Cancel reservation
// ----------------------------------------------------

func (mc *MenuController) CancelReservation() error {
	fmt.Println("====== Cancelamento de reserva ======")
	guest := mc.promptGuest()

	if _, err := mc.Reservations.Cancel(guest); err != nil {
		utils.PrintEllipsis(fmt.Sprintf("\nNao existe reserva ativa no nome de %s", guest))
		return err
	}
	utils.PrintSuccess("\nReserva cancelada com sucesso")
	return nil
}

// ----------------------------------------------------
// 5. Check-in
// ----------------------------------------------------

func (mc *MenuController) CheckIn() error {
	fmt.Println("====== Registrar check-in ======")
	guest := mc.promptGuest()

	matches, err := mc.Reservations.CheckIn(guest)
	if err != nil {
		utils.PrintEllipsis(fmt.Sprintf("\nNao existe reserva ativa no nome de %s", guest))
		return err
	}

	utils.PrintSuccess("\nCheck-in realizado com sucesso")
	for _, res := range matches {
		nights := mc.Billing.Nights(res.Start, res.End)
		fmt.Printf("Periodo: %s ate %s\n", utils.FormatDate(res.Start), utils.FormatDate(res.End))
		fmt.Printf("Quantidade de dias: %d\n", nights)
		fmt.Printf("Valor total (diarias): %s\n", utils.FormatMoney(mc.Billing.RoomCharge(res.Room, res.Start, res.End)))
		mc.printRoom(res.Room)
	}
	return nil
}

// ----------------------------------------------------
// 6. Check-out
// ----------------------------------------------------

func (mc *MenuController) CheckOut() error {
	fmt.Println("====== Registrar check-out ======")
	guest := mc.promptGuest()

	statements, err := mc.Reservations.CheckOut(guest)
	switch {
	case errors.Is(err, services.ErrNoCheckedInReservation):
		utils.PrintEllipsis(fmt.Sprintf("\nNao existe check-in ativo no nome de %s", guest))
		return err
	case err != nil:
		utils.PrintError(err.Error())
		return err
	}

	utils.PrintSuccess("\nCheck-out realizado com sucesso")
	for _, stmt := range statements {
		res := stmt.Reservation
		fmt.Printf("Periodo: %s ate %s\n", utils.FormatDate(res.Start), utils.FormatDate(res.End))
		fmt.Printf("Quantidade de dias: %d\n", stmt.Nights)
		fmt.Printf("Valor diarias: %s\n", utils.FormatMoney(stmt.RoomCharge))
		fmt.Printf("Valor consumo (copa): %s\n", utils.FormatMoney(stmt.ConsumptionCharge))
		for _, item := range stmt.Items {
			fmt.Printf("   %s: %s\n", item.Name, utils.FormatMoney(item.Price))
		}
		fmt.Printf("Valor Total: %s\n", utils.FormatMoney(stmt.Total))
	}
	return nil
}

// ----------------------------------------------------
// 7. Record consumption
// ----------------------------------------------------

func (mc *MenuController) RecordConsumption() error {
	fmt.Println("====== Registrar consumo ======")
	guest := mc.promptGuest()

	fmt.Println("Codigo, Produto, Preco:")
	for _, p := range mc.Products.List() {
		fmt.Printf("%d.%s: %s\n", p.Code, p.Name, utils.FormatMoney(p.Price))
	}

	for {
		text := mc.promptLine("\nInforme o codigo do produto ou pressione Enter para sair: ")
		if text == "" {
			return nil
		}
		code, err := strconv.Atoi(text)
		if err != nil {
			utils.PrintError("Informe um codigo valido")
			continue
		}
		qty, err := strconv.Atoi(mc.promptLine("Informe a quantidade: "))
		if err != nil || qty <= 0 {
			utils.PrintError("Informe uma quantidade valida")
			continue
		}

		product, err := mc.Rooms.RecordConsumption(guest, code, qty)
		switch {
		case errors.Is(err, services.ErrNoCheckedInReservation):
			utils.PrintEllipsis(fmt.Sprintf("\nNao existe check-in ativo no nome de %s", guest))
			return err
		case errors.Is(err, services.ErrProductNotFound):
			utils.PrintError("Informe um codigo valido")
			continue
		case err != nil:
			utils.PrintError(err.Error())
			continue
		}
		fmt.Printf("%s x%d adicionado(a)\n", product.Name, qty)
	}
}

// ----------------------------------------------------
// 8. Save (snapshot to disk, then reload)
// ----------------------------------------------------

func (mc *MenuController) Save() error {
	if err := mc.Store.Save(mc.GH.ExportSnapshot()); err != nil {
		utils.PrintError(err.Error())
		return err
	}
	utils.PrintEllipsis("\nSalvando dados")

	// Reload so in-memory state also drops the archived reservations.
	snap, err := mc.Store.Load()
	if err != nil {
		utils.PrintError(err.Error())
		return err
	}
	return mc.GH.ImportSnapshot(snap)
}

// ----------------------------------------------------
// Shared display helpers
// ----------------------------------------------------

func (mc *MenuController) printRoom(room *models.Room) {
	fmt.Println("Quarto:")
	fmt.Printf("    Numero: %d\n", room.Number)
	fmt.Printf("    Categoria: %s\n", room.Category)
	fmt.Printf("    Valor da diaria: %s\n", utils.FormatMoney(room.NightlyRate))
}

func (mc *MenuController) printReservation(res *models.Reservation) {
	fmt.Printf("Cliente: %s\n", res.Guest)
	fmt.Printf("Periodo: %s ate %s\n", utils.FormatDate(res.Start), utils.FormatDate(res.End))
	mc.printRoom(res.Room)
	fmt.Println()
}

// ----------------------------------------------------
// Menu loop
// ----------------------------------------------------

type menuEntry struct {
	label   string
	handler func() error
}

// Run shows the menu until the operator picks 0. Handler errors are already
// reported to the operator; the action logger records them for the terminal
// session log.
func (mc *MenuController) Run() {
	entries := map[string]menuEntry{
		"1": {"availability", mc.Availability},
		"2": {"query-reservations", mc.QueryReservations},
		"3": {"make-reservation", mc.MakeReservation},
		"4": {"cancel-reservation", mc.CancelReservation},
		"5": {"check-in", mc.CheckIn},
		"6": {"check-out", mc.CheckOut},
		"7": {"record-consumption", mc.RecordConsumption},
		"8": {"save", mc.Save},
	}

	for {
		utils.ClearScreen()
		fmt.Printf("====== Pousada %s ======\n", mc.GH.Property.Name)
		fmt.Println("1 - Consulta disponibilidade")
		fmt.Println("2 - Consulta reserva")
		fmt.Println("3 - Realizar reserva")
		fmt.Println("4 - Cancelar reserva")
		fmt.Println("5 - Realizar check-in")
		fmt.Println("6 - Realizar check-out")
		fmt.Println("7 - Registrar consumo")
		fmt.Println("8 - Salvar")
		fmt.Println("0 - Sair")

		choice := mc.promptLine("Digite o numero da opcao desejada: ")
		if choice == "0" {
			utils.PrintEllipsis("\nSaindo")
			return
		}
		entry, ok := entries[choice]
		if !ok {
			continue
		}
		utils.ClearScreen()
		_ = middleware.ActionLogger(entry.label, entry.handler)
		mc.pause()
	}
}
