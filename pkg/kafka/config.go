package kafka

// Config holds Kafka connection settings.
type Config struct {
	Brokers []string
}
