package render

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	Clear()
	Fill(row, column int, message string)
	Flush() error
}
