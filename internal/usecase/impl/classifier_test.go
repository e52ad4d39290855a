package impl

import (
	"testing"

	"mandoob/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestClassify_WorkKeyword(t *testing.T) {
	assert.Equal(t, usecase.CategoryWork, classify("عايز اعرف حالة الفاتورة"))
	assert.Equal(t, usecase.CategoryWork, classify("ابحث عن مندوب متاح للتوصيل"))
}

func TestClassify_TechKeyword(t *testing.T) {
	assert.Equal(t, usecase.CategoryTech, classify("ما معنى API؟"))
	assert.Equal(t, usecase.CategoryTech, classify("عندي مشكلة في البرمجة"))
}

func TestClassify_Greeting(t *testing.T) {
	assert.Equal(t, usecase.CategoryGeneral, classify("صباح الخير"))
}

func TestClassify_NoMatchDefaultsToGeneral(t *testing.T) {
	assert.Equal(t, usecase.CategoryGeneral, classify("ولا كلمة معروفة هنا"))
}

func TestClassify_WorkWinsOverTech(t *testing.T) {
	// Both tables match; the work table is consulted first.
	assert.Equal(t, usecase.CategoryWork, classify("هل يوجد API لاستعلام الفواتير؟"))
}
