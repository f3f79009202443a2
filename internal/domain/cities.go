package domain

// City is a Taiwanese administrative region recognized by the TDX API.
type City struct {
	Code   string `json:"code"`
	NameZh string `json:"name_zh"`
	NameEn string `json:"name_en"`
}

// SupportedCities lists every city/county TDX publishes parking and EV
// data for, in catalogue order. Codes match the TDX path segments.
var SupportedCities = []City{
	{Code: "Taipei", NameZh: "臺北市", NameEn: "Taipei City"},
	{Code: "NewTaipei", NameZh: "新北市", NameEn: "New Taipei City"},
	{Code: "Taoyuan", NameZh: "桃園市", NameEn: "Taoyuan City"},
	{Code: "Taichung", NameZh: "臺中市", NameEn: "Taichung City"},
	{Code: "Tainan", NameZh: "臺南市", NameEn: "Tainan City"},
	{Code: "Kaohsiung", NameZh: "高雄市", NameEn: "Kaohsiung City"},
	{Code: "Keelung", NameZh: "基隆市", NameEn: "Keelung City"},
	{Code: "Hsinchu", NameZh: "新竹市", NameEn: "Hsinchu City"},
	{Code: "HsinchuCounty", NameZh: "新竹縣", NameEn: "Hsinchu County"},
	{Code: "MiaoliCounty", NameZh: "苗栗縣", NameEn: "Miaoli County"},
	{Code: "ChanghuaCounty", NameZh: "彰化縣", NameEn: "Changhua County"},
	{Code: "NantouCounty", NameZh: "南投縣", NameEn: "Nantou County"},
	{Code: "YunlinCounty", NameZh: "雲林縣", NameEn: "Yunlin County"},
	{Code: "ChiayiCounty", NameZh: "嘉義縣", NameEn: "Chiayi County"},
	{Code: "Chiayi", NameZh: "嘉義市", NameEn: "Chiayi City"},
	{Code: "PingtungCounty", NameZh: "屏東縣", NameEn: "Pingtung County"},
	{Code: "YilanCounty", NameZh: "宜蘭縣", NameEn: "Yilan County"},
	{Code: "HualienCounty", NameZh: "花蓮縣", NameEn: "Hualien County"},
	{Code: "TaitungCounty", NameZh: "臺東縣", NameEn: "Taitung County"},
	{Code: "PenghuCounty", NameZh: "澎湖縣", NameEn: "Penghu County"},
	{Code: "KinmenCounty", NameZh: "金門縣", NameEn: "Kinmen County"},
	{Code: "LienchiangCounty", NameZh: "連江縣", NameEn: "Lienchiang County"},
}

var cityByCode = func() map[string]City {
	m := make(map[string]City, len(SupportedCities))
	for _, c := range SupportedCities {
		m[c.Code] = c
	}
	return m
}()

// ValidCity reports whether code is a supported city code.
func ValidCity(code string) bool {
	_, ok := cityByCode[code]
	return ok
}

// CityCodes returns all supported city codes in catalogue order.
func CityCodes() []string {
	codes := make([]string, len(SupportedCities))
	for i, c := range SupportedCities {
		codes[i] = c.Code
	}
	return codes
}
