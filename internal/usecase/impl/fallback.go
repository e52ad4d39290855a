package impl

import (
	"fmt"

	"mandoob/internal/domain/entity"
	"mandoob/internal/usecase"
)

const unavailableAnswer = `🤖 أنا مساعدك الذكي! للأسف الخدمة غير متاحة حاليًا للرد على سؤالك.

يمكنني عادةً المساعدة في:
• أسئلة العمل والفواتير والتوصيل
• الاستفسارات العامة والمعلومات
• حل المشكلات والنصائح

يرجى المحاولة مرة أخرى لاحقًا أو الاتصال بالدعم الفني.`

// fallbackAnswer builds a deterministic local reply from the live statistics
// snapshot. Work questions get the full statistics dump; tech and general
// questions get the static capability message. No randomness: identical store
// state and category yield identical text.
func fallbackAnswer(category usecase.QuestionCategory, stats *entity.Statistics) string {
	if category != usecase.CategoryWork {
		return unavailableAnswer
	}

	return fmt.Sprintf(`📊 إحصائيات النظام:
• إجمالي الفواتير: %d
• قيد التوصيل: %d
• مسلمة: %d
• مرتجعة: %d
• فواتير متأخرة: %d
• عدد المناديب: %d
• إجمالي الأصناف: %d
• أصناف منخفضة: %d

🤖 للأسف الخدمة غير متاحة حاليًا. هذه أحدث البيانات المحلية.`,
		stats.TotalInvoices,
		stats.PendingDelivery,
		stats.Delivered,
		stats.Returned,
		stats.DelayedInvoices,
		stats.Drivers,
		stats.StockItems,
		stats.LowStockItems,
	)
}

// systemPreamble builds the system portion of the outbound completion
// request: a category-specific instruction followed by the current
// statistics snapshot so the model answers from live data.
func systemPreamble(category usecase.QuestionCategory, stats *entity.Statistics) string {
	instruction := `أنت مساعد ذكي ومفيد. أجب على الأسئلة بلغة العربية بطريقة مفيدة ومحترفة. يمكنك الإجابة على أسئلة متنوعة في مجالات مختلفة.`
	if category == usecase.CategoryWork {
		instruction = `أنت مساعد في نظام إدارة الفواتير والتوصيل. أجب بلغة العربية فقط وساعد في أي سؤال.`
	}

	return fmt.Sprintf(`%s
البيانات المتاحة:
- الفواتير: %d فاتورة (قيد التوصيل: %d، مسلمة: %d، مرتجعة: %d، متأخرة: %d)
- الفواتير المؤرشفة: %d فاتورة
- المناديب: %d مندوب
- المخزون: %d صنف (منخفضة: %d)`,
		instruction,
		stats.TotalInvoices,
		stats.PendingDelivery,
		stats.Delivered,
		stats.Returned,
		stats.DelayedInvoices,
		stats.ArchivedInvoices,
		stats.Drivers,
		stats.StockItems,
		stats.LowStockItems,
	)
}
