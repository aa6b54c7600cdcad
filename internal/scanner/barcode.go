package scanner

import (
	"regexp"
	"strings"
)

// Kabul edilen barkod formatları. Bunların dışındaki her kod reddedilir
// ve hiçbir arama yapılmaz.
var (
	reEAN13   = regexp.MustCompile(`^[0-9]{13}$`)
	reUPCA    = regexp.MustCompile(`^[0-9]{12}$`)
	reCODE128 = regexp.MustCompile(`^[0-9A-Z]{6,20}$`)
)

// Validate: kod tam olarak formatlardan birine uyuyor mu?
// 14 haneli sayı gibi sınır aşan uzunluklar geçmez.
func Validate(code string) bool {
	return reEAN13.MatchString(code) || reUPCA.MatchString(code) || reCODE128.MatchString(code)
}

// Normalize: elle girilen kodu kırpar, büyük harfe çevirir ve doğrular.
// Geçersizse ikinci dönüş değeri false olur ve kod kullanılmamalıdır.
func Normalize(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", false
	}
	if !Validate(code) {
		return "", false
	}
	return code, true
}
