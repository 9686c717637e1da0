package timeseries

// Column names shared by daily and sample tables.
const (
	ColQ         = "Q"
	ColLogQ      = "LogQ"
	ColQ7        = "Q7"
	ColQ30       = "Q30"
	ColConcLow   = "ConcLow"
	ColConcHigh  = "ConcHigh"
	ColUncen     = "Uncen"
	ColConcAve   = "ConcAve"
	ColJulian    = "Julian"
	ColMonth     = "Month"
	ColDay       = "Day"
	ColDecYear   = "DecYear"
	ColMonthSeq  = "MonthSeq"
	ColWaterYear = "waterYear"
	ColSinDY     = "SinDY"
	ColCosDY     = "CosDY"
)

// CensoringColumns are the concentration columns every sample table carries.
var CensoringColumns = []string{ColConcLow, ColConcHigh, ColUncen, ColConcAve}
