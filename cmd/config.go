package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	IdentityServiceURL      string
	KafkaHost               string
	KafkaOrderEventsTopic   string
	KafkaNotificationsTopic string
}
