package types

// ServerConf 包含监听特有的配置
type ServerConf struct {
	ListenAddr string `ini:"listen_addr"` // 监听地址, e.g., "127.0.0.1:9080"
	WSPath     string `ini:"ws_path"`     // WebSocket路径, e.g., "/ws"
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是统一配置结构体 (只包含行为配置)
type Config struct {
	ServerConf `ini:"server"`
	LogConf    `ini:"log"`
}
