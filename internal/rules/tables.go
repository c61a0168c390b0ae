// Package rules implements the district inference cascade over directory records.
package rules

// Rule maps a matched key to a district label. Tables are ordered: when a
// record matches several keys in the same table, the first entry wins.
type Rule struct {
	Match    string `yaml:"match"`
	District string `yaml:"district"`
}

// DefaultKeywords are district-identifying substrings matched against the
// combined name, address, and URL text.
var DefaultKeywords = []Rule{
	{Match: "板橋", District: "新北市板橋區"},
	{Match: "中和", District: "新北市中和區"},
	{Match: "永和", District: "新北市永和區"},
}

// DefaultRoads map road-name substrings in the address field to districts.
var DefaultRoads = []Rule{
	// 板橋
	{Match: "新海路", District: "新北市板橋區"},
	{Match: "中正路", District: "新北市板橋區"},
	{Match: "英士路", District: "新北市板橋區"},
	{Match: "民生路二段", District: "新北市板橋區"},
	{Match: "民生路一段", District: "新北市板橋區"},
	{Match: "民生路", District: "新北市板橋區"},
	{Match: "文化路一段", District: "新北市板橋區"},
	{Match: "文化路二段", District: "新北市板橋區"},
	{Match: "板橋花市", District: "新北市板橋區"},
	{Match: "中山路一段", District: "新北市板橋區"},
	{Match: "中山路二段", District: "新北市板橋區"},
	{Match: "南雅南路", District: "新北市板橋區"},
	{Match: "板新路", District: "新北市板橋區"},
	{Match: "漢生東路", District: "新北市板橋區"},
	{Match: "縣民大道", District: "新北市板橋區"},
	{Match: "立德路", District: "新北市板橋區"},
	{Match: "民德路", District: "新北市板橋區"},
	{Match: "民權路", District: "新北市板橋區"},
	{Match: "民族路", District: "新北市板橋區"},
	{Match: "倉後街", District: "新北市板橋區"},
	{Match: "長安街", District: "新北市板橋區"},
	{Match: "校前街", District: "新北市板橋區"},
	{Match: "陽明街", District: "新北市板橋區"},
	{Match: "海山路", District: "新北市板橋區"},
	{Match: "南華路", District: "新北市板橋區"},
	{Match: "信義路", District: "新北市板橋區"},
	{Match: "南門街", District: "新北市板橋區"},
	{Match: "民生街", District: "新北市板橋區"},
	{Match: "三民路", District: "新北市板橋區"},
	{Match: "四川路一段", District: "新北市板橋區"},
	{Match: "四川路二段", District: "新北市板橋區"},
	{Match: "藝文街", District: "新北市板橋區"},
	// 中和
	{Match: "連城路", District: "新北市中和區"},
	{Match: "景新街", District: "新北市中和區"},
	{Match: "和平路", District: "新北市中和區"},
	{Match: "和平街", District: "新北市中和區"},
	{Match: "中和路", District: "新北市中和區"},
	{Match: "員山路", District: "新北市中和區"},
	{Match: "南山路", District: "新北市中和區"},
	{Match: "保健路", District: "新北市中和區"},
	// 永和
	{Match: "延和路", District: "新北市永和區"},
	// 土城
	{Match: "裕民路", District: "新北市土城區"},
	{Match: "金城路", District: "新北市土城區"},
	{Match: "忠孝路", District: "新北市土城區"},
	// 其他鄰近行政區
	{Match: "瓊林路", District: "新北市新莊區"},
	{Match: "敦化北路", District: "台北市松山區"},
	{Match: "長安東路", District: "台北市中山區"},
	{Match: "萬寧街", District: "台北市文山區"},
}

// DefaultOverrides fix known stores that neither text rules nor coordinates
// place correctly. Matched by exact record name.
var DefaultOverrides = []Rule{
	{Match: "台北愛麗絲花坊網路花店", District: "台北市松山區"},
	{Match: "玖桉花藝 南京復興", District: "台北市中山區"},
	{Match: "榆果工作室 ( 榆果傢飾 )", District: "台北市文山區"},
	{Match: "花見鍾情花坊", District: "新北市土城區"},
	{Match: "Millie米莉花藝坊", District: "新北市土城區"},
	{Match: "麗的花坊工作室", District: "新北市板橋區"},
}
