package collection

import "unicode/utf8"

// DefaultShortNames maps county names to the abbreviations shown on county badges
var DefaultShortNames = map[string]string{
	"臺北市": "北市",
	"台北市": "北市",
	"新北市": "新北",
	"基隆市": "基隆",
	"桃園市": "桃園",
	"新竹市": "竹市",
	"新竹縣": "竹縣",
	"苗栗縣": "苗栗",
	"臺中市": "中市",
	"台中市": "中市",
	"彰化縣": "彰化",
	"南投縣": "南投",
	"雲林縣": "雲林",
	"嘉義市": "嘉市",
	"嘉義縣": "嘉縣",
	"臺南市": "南市",
	"台南市": "南市",
	"高雄市": "高雄",
	"屏東縣": "屏東",
	"宜蘭縣": "宜蘭",
	"花蓮縣": "花蓮",
	"臺東縣": "臺東",
	"台東縣": "臺東",
	"澎湖縣": "澎湖",
	"金門縣": "金門",
	"連江縣": "馬祖",
}

// ShortName returns the abbreviation of county from table,
// falling back to the first character of the county name
func ShortName(county string, table map[string]string) string {
	if short, ok := table[county]; ok {
		return short
	}
	r, size := utf8.DecodeRuneInString(county)
	if size == 0 {
		return ""
	}
	return string(r)
}
