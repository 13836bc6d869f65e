// Package i18n holds the typed label tables for the two supported languages.
// Every user-visible string that depends on the workspace language is
// resolved once through For, instead of being looked up by key at runtime.
package i18n

import (
	"fmt"
	"strings"
)

// Language selects both the UI labels and the language the generation
// provider is instructed to write in.
type Language int

const (
	// English is the primary language.
	English Language = iota
	// Thai is the secondary language.
	Thai
)

// Code returns the short language code used in config files and flags.
func (l Language) Code() string {
	switch l {
	case Thai:
		return "th"
	default:
		return "en"
	}
}

func (l Language) String() string {
	switch l {
	case Thai:
		return "Thai"
	default:
		return "English"
	}
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == Thai {
		return English
	}
	return Thai
}

// Parse converts a language code ("en", "th", "primary", "secondary") into a Language.
func Parse(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "en", "english", "primary":
		return English, nil
	case "th", "thai", "secondary":
		return Thai, nil
	default:
		return English, fmt.Errorf("unsupported language %q", code)
	}
}

// Labels is the full set of language-dependent strings.
type Labels struct {
	// Conversation
	You             string
	Assistant       string
	Welcome         string
	AskPlaceholder  string
	Acknowledgement string
	GenericError    string
	TemplatePrompt  string

	// History
	YourChats         string
	SearchPlaceholder string
	NewChat           string
	JustNow           string
	Updated           string
	Rename            string
	Delete            string

	// Preview
	PreviewTitle    string
	NoDocument      string
	EditPlaceholder string
	Edit            string
	Save            string
	Download        string
	AutoCorrect     string
	Regenerate      string
	FullScreen      string
	ExitFullScreen  string
	ClosePreview    string
	OpenPreview     string

	// Navigation
	CollapseSidebar string
	OpenSidebar     string
	Logout          string

	// Status
	Generating     string
	Refining       string
	OfflineDraft   string
	Exported       string
	Copied         string
	EditsSaved     string
	NoTextProduced string
}

var english = Labels{
	You:             "You",
	Assistant:       "Assistant",
	Welcome:         "Ask me to generate a document...",
	AskPlaceholder:  "Ask LLM to generate document ...",
	Acknowledgement: "I've drafted the document for you in the preview panel.",
	GenericError:    "Sorry, I encountered an error generating that.",
	TemplatePrompt:  "Draft a cover letter for a software engineer position...",

	YourChats:         "YOUR CHATS",
	SearchPlaceholder: "Search...",
	NewChat:           "New Chat",
	JustNow:           "Just now",
	Updated:           "Updated",
	Rename:            "Rename",
	Delete:            "Delete",

	PreviewTitle:    "Preview",
	NoDocument:      "No document generated yet.",
	EditPlaceholder: "Edit your content here...",
	Edit:            "Edit",
	Save:            "Save",
	Download:        "Download",
	AutoCorrect:     "Auto Correct",
	Regenerate:      "Regenerate",
	FullScreen:      "Full Screen",
	ExitFullScreen:  "Exit Full Screen",
	ClosePreview:    "Close Preview",
	OpenPreview:     "Open Preview",

	CollapseSidebar: "Collapse Sidebar",
	OpenSidebar:     "Open Sidebar",
	Logout:          "Log Out",

	Generating:     "Drafting",
	Refining:       "Refining",
	OfflineDraft:   "Provider unavailable, showing an offline draft",
	Exported:       "Document exported to",
	Copied:         "Document copied to clipboard",
	EditsSaved:     "Edits saved to chat",
	NoTextProduced: "No text generated.",
}

var thai = Labels{
	You:             "คุณ",
	Assistant:       "ผู้ช่วย",
	Welcome:         "ให้ฉันช่วยสร้างเอกสารให้คุณ...",
	AskPlaceholder:  "พิมพ์คำสั่งเพื่อสร้างเอกสาร ...",
	Acknowledgement: "ฉันได้ร่างเอกสารให้คุณแล้วทางด้านขวา",
	GenericError:    "ขออภัย เกิดข้อผิดพลาดในการสร้างเอกสาร",
	TemplatePrompt:  "ช่วยร่างจดหมายสมัครงานตำแหน่งโปรแกรมเมอร์...",

	YourChats:         "แชทของคุณ",
	SearchPlaceholder: "ค้นหา...",
	NewChat:           "แชทใหม่",
	JustNow:           "เมื่อสักครู่",
	Updated:           "อัปเดตแล้ว",
	Rename:            "เปลี่ยนชื่อ",
	Delete:            "ลบ",

	PreviewTitle:    "ตัวอย่าง",
	NoDocument:      "ยังไม่มีเอกสาร",
	EditPlaceholder: "แก้ไขเนื้อหาที่นี่...",
	Edit:            "แก้ไข",
	Save:            "บันทึก",
	Download:        "ดาวน์โหลด",
	AutoCorrect:     "ตรวจสอบคำผิด",
	Regenerate:      "สร้างใหม่",
	FullScreen:      "เต็มหน้าจอ",
	ExitFullScreen:  "ย่อหน้าจอ",
	ClosePreview:    "ปิดตัวอย่าง",
	OpenPreview:     "แสดงตัวอย่าง",

	CollapseSidebar: "ซ่อนแถบข้าง",
	OpenSidebar:     "แสดงแถบข้าง",
	Logout:          "ออกจากระบบ",

	Generating:     "กำลังร่าง",
	Refining:       "กำลังตรวจแก้",
	OfflineDraft:   "ไม่สามารถเชื่อมต่อผู้ให้บริการ แสดงเอกสารจำลอง",
	Exported:       "ส่งออกเอกสารไปที่",
	Copied:         "คัดลอกเอกสารแล้ว",
	EditsSaved:     "บันทึกการแก้ไขแล้ว",
	NoTextProduced: "ไม่สามารถสร้างข้อความได้",
}

// For returns the label table for lang. Unknown values fall back to English.
func For(lang Language) Labels {
	if lang == Thai {
		return thai
	}
	return english
}
