package model

type Category struct {
	ID      string
	Name    string
	GroupID string
	Hidden  bool
	Deleted bool
}

type CategoryGroup struct {
	ID         string
	Name       string
	Hidden     bool
	Deleted    bool
	Categories []Category
}
