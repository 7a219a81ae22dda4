package download

// Outcome is the terminal classification of a fetch.
type Outcome int

// Possible outcomes. Exactly one is reported per fetch.
const (
	Success Outcome = iota
	Failed
	TooLarge
	UnknownFile
)

var outcomeNames = [...]string{
	Success:     "SUCCESS",
	Failed:      "FAILED",
	TooLarge:    "TOO_LARGE",
	UnknownFile: "UNKNOWN_FILE",
}

// translationKeys are the message keys the client UI looks up.
var translationKeys = [...]string{
	Success:     "cfm.tv.success",
	Failed:      "cfm.tv.failed",
	TooLarge:    "cfm.tv.too_large",
	UnknownFile: "cfm.tv.unknown_file",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "UNKNOWN"
	}
	return outcomeNames[o]
}

// Key returns the translation key for o.
func (o Outcome) Key() string {
	if o < 0 || int(o) >= len(translationKeys) {
		return ""
	}
	return translationKeys[o]
}

// MarshalText implements encoding.TextMarshaler so outcomes render by name in JSON output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
