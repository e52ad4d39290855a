package impl

import (
	"strings"

	"mandoob/internal/usecase"
)

// Keyword tables for question classification. Matching is substring-based on
// the lower-cased question. The tables are disjoint and are consulted in
// order work, tech, general; the first table to match wins, and anything
// unmatched falls through to general. This ordering decides which system
// preamble goes out with the remote request and which fallback template is
// used, so it must stay stable.
var (
	workKeywords = []string{
		"فاتورة", "فواتير", "مندوب", "سائق", "مخزون", "صنف",
		"توصيل", "تسليم", "مرتجع", "زبون", "عميل", "سعر",
		"تكلفة", "دفع", "شحن", "طلبات", "طلب", "نظام",
		"إدارة", "تقرير", "إحصائيات", "بيانات", "شركة", "عمل",
		"invoice", "driver", "stock", "delivery",
	}

	techKeywords = []string{
		"api", "برمجة", "كود", "تقني", "تقنية", "كمبيوتر",
		"حاسوب", "برنامج", "تطبيق", "انترنت", "إنترنت",
		"سيرفر", "خادم", "قاعدة بيانات", "شبكة", "موقع",
		"javascript", "python", "html", "سوفتوير",
	}

	generalKeywords = []string{
		"صباح", "مساء", "مرحبا", "أهلا", "اهلا", "شكرا",
		"شكرًا", "كيف حالك", "من انت", "من أنت", "وداعا",
	}
)

// classify buckets a question into the category that selects its context
// and fallback template.
func classify(question string) usecase.QuestionCategory {
	lower := strings.ToLower(question)

	for _, kw := range workKeywords {
		if strings.Contains(lower, kw) {
			return usecase.CategoryWork
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			return usecase.CategoryTech
		}
	}
	for _, kw := range generalKeywords {
		if strings.Contains(lower, kw) {
			return usecase.CategoryGeneral
		}
	}

	return usecase.CategoryGeneral
}
