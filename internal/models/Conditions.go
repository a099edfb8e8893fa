package models

// Condition pairs a human-readable description with its icon code. The nine
// entries below are the complete set the generator draws from; day variants
// carry the "d" suffix, night variants "n".
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Conditions is the fixed enumeration of weather conditions (day variants).
var Conditions = []Condition{
	{Description: "Clear sky", Icon: "01d"},
	{Description: "Few clouds", Icon: "02d"},
	{Description: "Scattered clouds", Icon: "03d"},
	{Description: "Broken clouds", Icon: "04d"},
	{Description: "Shower rain", Icon: "09d"},
	{Description: "Rain", Icon: "10d"},
	{Description: "Thunderstorm", Icon: "11d"},
	{Description: "Snow", Icon: "13d"},
	{Description: "Mist", Icon: "50d"},
}

// IconInfo is presentation metadata for an icon code.
type IconInfo struct {
	Color   string `json:"color"`
	BgColor string `json:"bgColor"`
	Label   string `json:"label"`
}

// DefaultIconInfo is returned for any icon code outside the enumeration.
var DefaultIconInfo = IconInfo{Color: "blue", BgColor: "blue-50", Label: "Weather"}

var iconInfoByCode = map[string]IconInfo{
	"01d": {Color: "amber", BgColor: "amber-50", Label: "Clear Sky"},
	"01n": {Color: "indigo", BgColor: "indigo-50", Label: "Clear Night"},
	"02d": {Color: "blue", BgColor: "blue-50", Label: "Few Clouds"},
	"02n": {Color: "indigo", BgColor: "indigo-50", Label: "Few Clouds"},
	"03d": {Color: "gray", BgColor: "gray-50", Label: "Scattered Clouds"},
	"03n": {Color: "gray", BgColor: "gray-50", Label: "Scattered Clouds"},
	"04d": {Color: "gray", BgColor: "gray-50", Label: "Broken Clouds"},
	"04n": {Color: "gray", BgColor: "gray-50", Label: "Broken Clouds"},
	"09d": {Color: "blue", BgColor: "blue-50", Label: "Shower Rain"},
	"09n": {Color: "blue", BgColor: "blue-50", Label: "Shower Rain"},
	"10d": {Color: "blue", BgColor: "blue-50", Label: "Rain"},
	"10n": {Color: "blue", BgColor: "blue-50", Label: "Rain"},
	"11d": {Color: "purple", BgColor: "purple-50", Label: "Thunderstorm"},
	"11n": {Color: "purple", BgColor: "purple-50", Label: "Thunderstorm"},
	"13d": {Color: "blue", BgColor: "blue-50", Label: "Snow"},
	"13n": {Color: "blue", BgColor: "blue-50", Label: "Snow"},
	"50d": {Color: "gray", BgColor: "gray-50", Label: "Mist"},
	"50n": {Color: "gray", BgColor: "gray-50", Label: "Mist"},
}

// IconInfoFor looks up presentation metadata for an icon code. Unrecognized
// codes get DefaultIconInfo rather than an error.
func IconInfoFor(code string) IconInfo {
	if info, ok := iconInfoByCode[code]; ok {
		return info
	}
	return DefaultIconInfo
}

// ValidIcon reports whether code belongs to the enumerated icon set.
func ValidIcon(code string) bool {
	_, ok := iconInfoByCode[code]
	return ok
}
