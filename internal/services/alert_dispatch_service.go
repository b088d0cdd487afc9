package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medequip_server/config"
	"medequip_server/internal/db"
	"medequip_server/internal/models"
	"medequip_server/internal/ws"
	"medequip_server/pkg/colors"
)

// AlertDispatchService delivers due-tomorrow reminders through the Telegram
// and WhatsApp channels
type AlertDispatchService struct {
	telegram *config.TelegramConfig
	whatsapp *config.WhatsAppConfig
	client   *http.Client
}

// NewAlertDispatchService creates a dispatch service from the environment
// configuration. A channel without credentials is disabled with a warning.
func NewAlertDispatchService() *AlertDispatchService {
	telegram := config.GetTelegramConfig()
	whatsapp := config.GetWhatsAppConfig()

	if telegram.BotToken == "" {
		colors.PrintWarning("Telegram bot token not configured, Telegram channel disabled")
	}
	if whatsapp.APIKey == "" {
		colors.PrintWarning("WhatsApp API key not configured, WhatsApp channel disabled")
	}

	return &AlertDispatchService{
		telegram: telegram,
		whatsapp: whatsapp,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramResponse struct {
	OK bool `json:"ok"`
}

type whatsAppMessage struct {
	APIKey  string `json:"apiKey"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CheckAndSendDueAlerts finds pending alerts due tomorrow and attempts
// delivery to every recipient. A failed recipient never blocks the others.
// Alert status stays pending after the attempt; only updated_at is touched.
func (ds *AlertDispatchService) CheckAndSendDueAlerts() (int, error) {
	database := db.GetDB()
	start, end := TomorrowWindow()

	var alerts []models.Alert
	err := database.
		Where("status = ? AND due_date >= ? AND due_date <= ?", models.AlertStatusPending, start, end).
		Preload("Equipment").
		Find(&alerts).Error
	if err != nil {
		return 0, err
	}

	colors.PrintInfo("Found %d pending alerts due tomorrow", len(alerts))

	for i := range alerts {
		alert := &alerts[i]
		message := ds.buildAlertMessage(alert)

		if err := ds.sendTelegram(message); err != nil {
			colors.PrintError("Failed to send alert %d via Telegram: %v", alert.ID, err)
		}
		if err := ds.sendWhatsApp(message); err != nil {
			colors.PrintError("Failed to send alert %d via WhatsApp: %v", alert.ID, err)
		}

		if err := database.Model(alert).Update("updated_at", time.Now()).Error; err != nil {
			colors.PrintError("Failed to touch alert %d after dispatch: %v", alert.ID, err)
		}
		ws.BroadcastAlertEvent(ws.AlertEventDispatchAttempted, alert)
	}

	return len(alerts), nil
}

// buildAlertMessage renders the reminder text sent to every recipient
func (ds *AlertDispatchService) buildAlertMessage(alert *models.Alert) string {
	brand, model, serial, unit := "", "", "", ""
	if alert.Equipment != nil {
		brand = alert.Equipment.Brand
		model = alert.Equipment.Model
		serial = alert.Equipment.SerialNumber
		unit = alert.Equipment.Unit
	}

	text := alert.Message
	if text == "" {
		text = "Scheduled maintenance"
	}

	return fmt.Sprintf("🔔 *MAINTENANCE ALERT* 🔔\n\n"+
		"*Equipment:* %s %s\n"+
		"*Serial:* %s\n"+
		"*Unit:* %s\n"+
		"*Due date:* %s\n"+
		"*Message:* %s\n\n"+
		"Please confirm receipt of this alert.",
		brand, model, serial, unit,
		alert.DueDate.In(config.GetLocation()).Format("02/01/2006"), text)
}

func (ds *AlertDispatchService) sendTelegram(message string) error {
	if ds.telegram.BotToken == "" {
		return nil
	}

	body, err := json.Marshal(telegramMessage{
		ChatID:    ds.telegram.ChatID,
		Text:      message,
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", ds.telegram.APIURL, ds.telegram.BotToken)
	resp, err := ds.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("telegram API returned ok=false (status %d)", resp.StatusCode)
	}

	colors.PrintSuccess("Alert sent via Telegram to chat %s", ds.telegram.ChatID)
	return nil
}

func (ds *AlertDispatchService) sendWhatsApp(message string) error {
	if ds.whatsapp.APIKey == "" {
		return nil
	}

	body, err := json.Marshal(whatsAppMessage{
		APIKey:  ds.whatsapp.APIKey,
		Phone:   ds.whatsapp.Phone,
		Message: message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, ds.whatsapp.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ds.whatsapp.APIKey)

	resp, err := ds.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}

	colors.PrintSuccess("Alert sent via WhatsApp to %s", ds.whatsapp.Phone)
	return nil
}
