package config

// TelegramConfig holds the configuration for the Telegram bot channel
type TelegramConfig struct {
	BotToken string
	APIURL   string
	ChatID   string
}

// WhatsAppConfig holds the configuration for the WhatsApp channel
type WhatsAppConfig struct {
	APIKey string
	APIURL string
	Phone  string
}

// GetTelegramConfig returns Telegram configuration from environment variables.
// An empty bot token disables the channel.
func GetTelegramConfig() *TelegramConfig {
	return &TelegramConfig{
		BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		APIURL:   getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		ChatID:   getEnv("TELEGRAM_CHAT_ID", "123456789"),
	}
}

// GetWhatsAppConfig returns WhatsApp configuration from environment variables.
// An empty API key disables the channel.
func GetWhatsAppConfig() *WhatsAppConfig {
	return &WhatsAppConfig{
		APIKey: getEnv("WHATSAPP_API_KEY", ""),
		APIURL: getEnv("WHATSAPP_API_URL", "https://api.whatsapp.com/send"),
		Phone:  getEnv("WHATSAPP_PHONE", "+5511987654321"),
	}
}
