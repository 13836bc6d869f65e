package generation

import (
	"fmt"

	"github.com/docdraft/docdraft/internal/i18n"
)

// MockDocument is the offline draft returned when the provider is unusable.
func MockDocument(topic string, lang i18n.Language) string {
	if lang == i18n.Thai {
		return fmt.Sprintf("# เอกสารตัวอย่าง: %s\n\n"+
			"นี่คือตัวอย่างเอกสารที่สร้างขึ้นโดยระบบจำลอง (Mock Mode) เนื่องจากไม่พบ API Key หรือเกิดข้อผิดพลาดในการเชื่อมต่อ\n\n"+
			"## หัวข้อหลัก\n\n"+
			"เนื้อหาในส่วนนี้จะเป็นการจำลองข้อความ เพื่อให้เห็นรูปแบบการจัดวางเอกสาร โดยปกติแล้ว AI จะสร้างเนื้อหาที่เกี่ยวข้องกับ \"%s\" อย่างละเอียด\n\n"+
			"- รายการที่ 1\n- รายการที่ 2\n- รายการที่ 3\n\n"+
			"สรุปแล้ว ระบบสามารถทำงานได้ตามปกติในส่วนของ UI และการโต้ตอบ", topic, topic)
	}
	return fmt.Sprintf("# Mock Document: %s\n\n"+
		"This is a sample document generated in **Mock Mode** because the API Key is missing or there was a connection error.\n\n"+
		"## Main Section\n\n"+
		"This content is simulated to demonstrate the layout and formatting. Normally, the AI would generate detailed content regarding \"%s\".\n\n"+
		"- Item 1\n- Item 2\n- Item 3\n\n"+
		"In conclusion, the UI and interaction flow are fully functional.", topic, topic)
}

// RefineMarker is appended to the original text when refinement falls back.
func RefineMarker(lang i18n.Language) string {
	if lang == i18n.Thai {
		return "\n\n(แก้ไขแล้ว - Mock)"
	}
	return "\n\n(Refined - Mock)"
}
