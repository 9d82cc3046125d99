package settings

type Config struct {
	Game   Game   `yaml:"game"`
	Logger Logger `yaml:"logger"`
}

// Game is the configuration for the piece queue, the reserve stack and the piece alphabet
type Game struct {
	QueueCapacity int      `yaml:"queue_capacity" validate:"min=1"`
	StackCapacity int      `yaml:"stack_capacity" validate:"min=1"`
	Kinds         []string `yaml:"kinds" validate:"min=1,unique,dive,len=1"`
	FirstID       int64    `yaml:"first_id" validate:"min=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"min=0"` // Number of files
	MaxAge      int    `yaml:"max_age" validate:"min=0"`     // Days
	MaxSize     int    `yaml:"max_size" validate:"min=0"`    // Megabytes
	Compress    bool   `yaml:"compress"`
}
