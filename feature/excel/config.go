package excel

// Config holds configuration for the workbook reader.
type Config struct {
	// Sheet is the worksheet name holding customer rows.
	Sheet string `mapstructure:"sheet" default:"customers"`
	// IDColumn is the header label of the record id column.
	IDColumn string `mapstructure:"id_column" default:"ID"`
	// NameColumn is the header label of the customer name column.
	NameColumn string `mapstructure:"name_column" default:"Name"`
}
