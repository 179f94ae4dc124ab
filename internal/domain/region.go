package domain

// RegionDescriptor - код и название административного региона первого уровня.
// Закрытый, медленно меняющийся справочник из upstream (обычно 17 записей).
type RegionDescriptor struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
