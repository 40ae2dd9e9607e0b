package dto

// AppendOutput reports the result of adding a task. Added is false when
// the text was blank after trimming, which is a no-op rather than an error.
type AppendOutput struct {
	Added bool
	Text  string
	Count int
}
