package reviews

// TableReader decodes an uploaded workbook into a raw header row and data
// rows. The whole file is decoded in memory; nothing is persisted.
type TableReader interface {
	Read(content []byte) (header []string, rows [][]string, err error)
}
