package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Remote record store serving the uploads and validations feeds
	RecordStoreURL        string `envconfig:"RECORD_STORE_URL"`
	RecordStoreTimeoutSec uint   `envconfig:"RECORD_STORE_TIMEOUT_SEC" default:"30"`

	// CorrelationWindowMin is the symmetric tolerance, in minutes, used to
	// attach uploads to a multi-image validation by timestamp.
	CorrelationWindowMin uint `envconfig:"CORRELATION_WINDOW_MIN" default:"5"`
	HistoryFetchLimit    int  `envconfig:"HISTORY_FETCH_LIMIT" default:"100"`
}
