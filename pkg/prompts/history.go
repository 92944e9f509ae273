// Package prompts builds the Turkish-language prompts sent to the
// generation backend.
package prompts

import (
	"fmt"
	"time"
)

// SystemMessage frames every generation request: the model acts as a
// historian specialized in the history of Turkey.
const SystemMessage = "Sen Türkiye tarihi konusunda uzmanlaşmış bir tarihçisin. " +
	"Türkiye'deki olaylar hakkında doğru, tarafsız ve detaylı bilgiler sunuyorsun."

// turkishMonths maps time.Month to Turkish month names for prompt dates.
var turkishMonths = [...]string{
	time.January:   "Ocak",
	time.February:  "Şubat",
	time.March:     "Mart",
	time.April:     "Nisan",
	time.May:       "Mayıs",
	time.June:      "Haziran",
	time.July:      "Temmuz",
	time.August:    "Ağustos",
	time.September: "Eylül",
	time.October:   "Ekim",
	time.November:  "Kasım",
	time.December:  "Aralık",
}

// BuildYearlySummaryPrompt asks for a chronological narrative of the
// year's notable events in one category.
func BuildYearlySummaryPrompt(year int, category string) string {
	return fmt.Sprintf(`%d yılında Türkiye'de %s alanında yaşanan önemli olayları kronolojik sırayla ve detaylı olarak anlat.
Her olay için tarih, yer ve önemli kişileri belirt. Olayların etkilerini ve sonuçlarını da açıkla.`,
		year, category)
}

// BuildEventDetailPrompt asks for a detailed account of one event.
// The date is rendered in Turkish ("17 Ağustos 1999").
func BuildEventDetailPrompt(date time.Time, title string) string {
	formatted := fmt.Sprintf("%d %s %d", date.Day(), turkishMonths[date.Month()], date.Year())

	return fmt.Sprintf(`%s tarihinde gerçekleşen "%s" olayını detaylı olarak anlat.
Olayın nedenleri, gelişimi, sonuçları ve Türkiye tarihindeki önemi hakkında bilgi ver.
Olaya dahil olan önemli kişileri ve olayın toplumsal, siyasi ve ekonomik etkilerini açıkla.`,
		formatted, title)
}

// BuildEventListPrompt asks for a JSON array of dated events for one
// (year, category). The format rules instructed here (YYYY-MM-DD dates,
// importance 1-5, mid-month/mid-year fallbacks for uncertain dates) are
// mirrored by the normalization in the generator package.
func BuildEventListPrompt(year int, category string) string {
	return fmt.Sprintf(`%d yılında Türkiye'de %s alanında gerçekleşen tüm önemli olayları tarih (gün ve ay dahil) ve başlıklarıyla listele.
Önemli, orta önemli ve daha az önemli olayları da dahil et. Mümkün olduğunca fazla olay ekle.

Yanıt format: JSON formatında bir dizi olarak dönüş yap, her olay için event_date (YYYY-MM-DD formatında), event_title (başlık) ve importance (1-5 arası önemlilik derecesi) bilgilerini içersin.
Örnek format:
[
  {
    "event_date": "1983-05-13",
    "event_title": "Örnek Ekonomik Olay",
    "importance": 4
  }
]

Önemli kurallar:
1. Sadece gerçek tarihi olaylar ekle, spekülasyon yapma.
2. Her olayın önemi için 1-5 arası bir değer belirle (5: çok önemli, 1: daha az önemli).
3. Olayları önce önem derecesine göre (5'ten 1'e), sonra tarihe göre sırala.
4. Olayların başlıklarını kısa ve öz tut, maksimum 100 karakter olsun.
5. Olayların tarihlerini kesin biliyorsan o tarihi kullan, eğer gün kesin değilse ayın 15'ini kullan, ay da kesin değilse 06 (Haziran) kullan.
6. Mümkün olduğunca fazla olay ekle, sayı sınırlaması yok.`,
		year, category)
}
