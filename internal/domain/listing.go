package domain

import "github.com/tour-microservice/internal/pkg/utils"

// ListingItem - одна точка интереса из листинга или поиска.
// Координаты уже переведены из fixed-point представления upstream в градусы;
// при невалидных исходных значениях HasCoordinates=false.
type ListingItem struct {
	ContentID      string           `json:"content_id"`
	ContentTypeID  string           `json:"content_type_id"`
	Title          string           `json:"title"`
	Addr1          string           `json:"addr1"`
	Addr2          string           `json:"addr2,omitempty"`
	Coordinate     utils.Coordinate `json:"coordinate"`
	HasCoordinates bool             `json:"has_coordinates"`
	FirstImage     string           `json:"first_image,omitempty"`
	FirstImage2    string           `json:"first_image2,omitempty"`
	Tel            string           `json:"tel,omitempty"`
	Cat1           string           `json:"cat1,omitempty"`
	Cat2           string           `json:"cat2,omitempty"`
	Cat3           string           `json:"cat3,omitempty"`
	ModifiedTime   string           `json:"modified_time"`
}

// ListingDetail - расширение ListingItem для страницы деталей
type ListingDetail struct {
	ListingItem
	Overview string `json:"overview,omitempty"`
	Zipcode  string `json:"zipcode,omitempty"`
	Homepage string `json:"homepage,omitempty"`
}

// ListingPage - страница листинга с общим количеством из upstream
type ListingPage struct {
	Items      []ListingItem `json:"items"`
	TotalCount int           `json:"total_count"`
}

// ListingImage - изображение объекта
type ListingImage struct {
	ContentID string `json:"content_id"`
	OriginURL string `json:"origin_url"`
	SmallURL  string `json:"small_url,omitempty"`
	Name      string `json:"name,omitempty"`
	Serial    string `json:"serial,omitempty"`
}

// OperatingInfo - режим работы / парковка / выходные из intro-эндпоинта.
// Имена полей у upstream различаются по типам контента, поэтому
// хранится сырой набор полей без нормализации - это забота представления.
type OperatingInfo struct {
	ContentID     string            `json:"content_id"`
	ContentTypeID string            `json:"content_type_id"`
	Fields        map[string]string `json:"fields"`
}

// PetInfo - информация о посещении с питомцами.
// Отсутствие данных - норма для большинства объектов.
type PetInfo struct {
	ContentID        string `json:"content_id"`
	AcmpyTypeCode    string `json:"acmpy_type_cd,omitempty"`
	AcmpyPossible    string `json:"acmpy_psbl_cpam,omitempty"`
	AcmpyNeeds       string `json:"acmpy_need_mtr,omitempty"`
	RelatedFacility  string `json:"rela_poses_fclty,omitempty"`
	RelatedSupplies  string `json:"rela_frnsh_prdlst,omitempty"`
	RelatedRental    string `json:"rela_rntl_prdlst,omitempty"`
	RelatedPurchase  string `json:"rela_purc_prdlst,omitempty"`
	AccidentResponse string `json:"rela_acdnt_risk_mtr,omitempty"`
	EtcInfo          string `json:"etc_acmpy_info,omitempty"`
}
