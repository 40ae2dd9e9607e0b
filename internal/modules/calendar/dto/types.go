package dto

type Marker struct {
	ID   int64
	Code string
	Time string
}

type Day struct {
	Num     int
	Key     string
	Today   bool
	Markers []Marker
}

type MonthOutput struct {
	Year    int
	Month   int
	Label   string
	Leading int
	Days    []Day
}
