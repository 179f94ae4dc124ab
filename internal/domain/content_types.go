package domain

// ContentType - тип контента в upstream API (contentTypeId)
type ContentType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Фиксированный справочник из восьми типов контента KorService2.
var ContentTypes = []ContentType{
	{ID: "12", Name: "관광지"},
	{ID: "14", Name: "문화시설"},
	{ID: "15", Name: "축제공연행사"},
	{ID: "25", Name: "여행코스"},
	{ID: "28", Name: "레포츠"},
	{ID: "32", Name: "숙박"},
	{ID: "38", Name: "쇼핑"},
	{ID: "39", Name: "음식점"},
}

// ContentTypeName возвращает название типа контента или пустую строку.
func ContentTypeName(id string) string {
	for _, ct := range ContentTypes {
		if ct.ID == id {
			return ct.Name
		}
	}
	return ""
}

// IsValidContentType проверяет, что id входит в справочник типов.
func IsValidContentType(id string) bool {
	return ContentTypeName(id) != ""
}
