package document

// Table is a grid of cell text, row-major, as detected on one page.
type Table [][]string

// Page is one unit of digital document content: its text layer plus any
// tables detected on it.
type Page struct {
	Text   string
	Tables []Table
}

// Backend supplies the digital content of one document format. Implementations
// must not OCR; the extractor decides when to fall back.
type Backend interface {
	Pages(data []byte) ([]Page, error)
}
