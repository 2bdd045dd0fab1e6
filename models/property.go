package models

// Property identifies the guesthouse itself (name + contact), shown in the
// menu banner and kept in its own snapshot file.
type Property struct {
	Name    string
	Contact string
}
