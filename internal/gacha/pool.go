package gacha

import "github.com/osse101/GachaTrip_Go/internal/domain"

// DefaultPool is the built-in destination table used when the catalog has none
var DefaultPool = []domain.Destination{
	{Title: "Taipei 101", County: "臺北市", Category: "Landmark", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "National Palace Museum", County: "臺北市", Category: "Museum", Duration: "3h", Rarity: domain.RarityRare},
	{Title: "Raohe Night Market", County: "臺北市", Category: "Night Market", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Jiufen Old Street", County: "新北市", Category: "Old Street", Duration: "3h", Rarity: domain.RarityCommon},
	{Title: "Shifen Waterfall", County: "新北市", Category: "Nature", Duration: "1h", Rarity: domain.RarityCommon},
	{Title: "Yehliu Geopark", County: "新北市", Category: "Nature", Duration: "2h", Rarity: domain.RarityRare},
	{Title: "Keelung Miaokou Night Market", County: "基隆市", Category: "Night Market", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Daxi Old Street", County: "桃園市", Category: "Old Street", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Neiwan Old Street", County: "新竹縣", Category: "Old Street", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Smangus", County: "新竹縣", Category: "Mountain", Duration: "1d", Rarity: domain.RarityEpic},
	{Title: "Nanzhuang Old Street", County: "苗栗縣", Category: "Old Street", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Rainbow Village", County: "臺中市", Category: "Art", Duration: "1h", Rarity: domain.RarityCommon},
	{Title: "Gaomei Wetlands", County: "臺中市", Category: "Nature", Duration: "2h", Rarity: domain.RarityRare},
	{Title: "Lukang Old Street", County: "彰化縣", Category: "Old Street", Duration: "3h", Rarity: domain.RarityCommon},
	{Title: "Sun Moon Lake", County: "南投縣", Category: "Lake", Duration: "1d", Rarity: domain.RarityRare},
	{Title: "Hehuanshan Main Peak", County: "南投縣", Category: "Mountain", Duration: "1d", Rarity: domain.RarityEpic},
	{Title: "Jiji Railway", County: "南投縣", Category: "Railway", Duration: "3h", Rarity: domain.RarityCommon},
	{Title: "Alishan Sunrise", County: "嘉義縣", Category: "Mountain", Duration: "1d", Rarity: domain.RarityLegendary},
	{Title: "Anping Old Fort", County: "臺南市", Category: "Historic Site", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Chihkan Tower", County: "臺南市", Category: "Historic Site", Duration: "1h", Rarity: domain.RarityCommon},
	{Title: "Pier-2 Art Center", County: "高雄市", Category: "Art", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Lotus Pond", County: "高雄市", Category: "Temple", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Kenting National Park", County: "屏東縣", Category: "Beach", Duration: "1d", Rarity: domain.RarityRare},
	{Title: "Little Liuqiu", County: "屏東縣", Category: "Island", Duration: "1d", Rarity: domain.RarityEpic},
	{Title: "Taroko Gorge", County: "花蓮縣", Category: "Nature", Duration: "1d", Rarity: domain.RarityEpic},
	{Title: "Qingshui Cliff", County: "花蓮縣", Category: "Nature", Duration: "1h", Rarity: domain.RarityRare},
	{Title: "Sanxiantai", County: "臺東縣", Category: "Beach", Duration: "2h", Rarity: domain.RarityCommon},
	{Title: "Green Island", County: "臺東縣", Category: "Island", Duration: "2d", Rarity: domain.RarityLegendary},
	{Title: "Jiaoxi Hot Springs", County: "宜蘭縣", Category: "Hot Spring", Duration: "3h", Rarity: domain.RarityCommon},
	{Title: "Guishan Island", County: "宜蘭縣", Category: "Island", Duration: "1d", Rarity: domain.RarityEpic},
	{Title: "Penghu Twin Hearts Stone Weir", County: "澎湖縣", Category: "Island", Duration: "1d", Rarity: domain.RarityLegendary},
	{Title: "Kinmen Juguang Tower", County: "金門縣", Category: "Historic Site", Duration: "2h", Rarity: domain.RarityRare},
	{Title: "Matsu Blue Tears", County: "連江縣", Category: "Nature", Duration: "1d", Rarity: domain.RarityLegendary},
}
