// File: services/conversation/menus.go
package conversation

import (
	"fmt"

	"bookline/models"
)

const (
	askNamePrompt       = "شو الاسم؟"
	workingHoursText    = "اوقات العمل ⏰ من 10 صباحًا إلى 8 مساءً"
	languageChangedText = "تم تغيير اللغة. Language changed ✅"
	unknownServiceLabel = "غير معروف"
)

var serviceLabels = map[string]string{
	"1": "أكريلك",
	"2": "جل",
	"3": "تركيب أظافر",
}

// ServiceLabel maps a service option id to its display label; unknown ids get
// the generic label rather than blocking the flow.
func ServiceLabel(id string) string {
	if label, ok := serviceLabels[id]; ok {
		return label
	}
	return unknownServiceLabel
}

// MainMenu is the entry menu every fresh session starts with.
func MainMenu() models.ListMessage {
	return models.ListMessage{
		Header:  "هلا،كيفك؟ ✋",
		Body:    "كيف ممكن أساعدك اليوم؟",
		Button:  "اختيار",
		Section: "Available Options",
		Rows: []models.ListRow{
			{ID: OptionBook, Title: "حجز دور 📅"},
			{ID: OptionHours, Title: "اوقات العمل ⏰"},
			{ID: OptionLanguage, Title: "تغيير لغه", Description: "Change language"},
		},
	}
}

// ServiceList offers the bookable services with their prices.
func ServiceList() models.ListMessage {
	return models.ListMessage{
		Body:    "شو حابة تعملي؟ 💅",
		Button:  "Select Date",
		Section: "Available Services",
		Rows: []models.ListRow{
			{ID: "1", Title: "💅 أكريلك (اكريل)", Description: "450"},
			{ID: "2", Title: "💅 جل", Description: "100"},
			{ID: "3", Title: "💅 تركيب أظافر", Description: "300"},
		},
	}
}

// DateMenu lists candidate dates. Row ids carry the date itself so the
// selection can drive the time lookup directly.
func DateMenu(dates []models.DateOption) models.ListMessage {
	rows := make([]models.ListRow, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, models.ListRow{ID: d.Title, Title: d.Title, Description: d.Description})
	}
	return models.ListMessage{
		Body:    "اختاري التاريخ المناسب 📅",
		Button:  "تواريخ",
		Section: "Available Dates",
		Rows:    rows,
	}
}

// TimeMenu lists candidate times for the chosen date; row ids carry the
// "HH:MM" value.
func TimeMenu(times []models.TimeOption) models.ListMessage {
	rows := make([]models.ListRow, 0, len(times))
	for _, t := range times {
		rows = append(rows, models.ListRow{ID: t.Title, Title: t.Title})
	}
	return models.ListMessage{
		Body:    "اختاري الوقت المناسب ⏰",
		Button:  "اوقات",
		Section: "Available Times",
		Rows:    rows,
	}
}

// ConfirmationText summarizes all four collected fields verbatim.
func ConfirmationText(sess *models.Session) string {
	return fmt.Sprintf(
		"تم تأكيد الحجز ✅\n\nالاسم: %s\nالخدمة: %s\nالتاريخ: %s\nالوقت: %s\n",
		sess.Name, sess.Service, sess.Date, sess.Time,
	)
}
