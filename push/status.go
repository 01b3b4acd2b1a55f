package push

// Status is the outcome vocabulary of the callback protocol.
type Status byte

//go:generate go run github.com/dmarkham/enumer -type Status
const (
	SUCCESS      Status = 0 // the callback is done
	INCOMPLETE   Status = 1 // all input consumed, waiting for more
	PARSE_ERROR  Status = 2 // input violates the expected format
	MEMORY_ERROR Status = 3 // graph construction failed
)
