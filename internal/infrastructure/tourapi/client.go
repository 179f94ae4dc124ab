package tourapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tour-microservice/internal/config"
	"github.com/tour-microservice/internal/domain"
	"github.com/tour-microservice/internal/domain/repository"
	apperrors "github.com/tour-microservice/internal/pkg/errors"
	"github.com/tour-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

// Эндпоинты KorService2
const (
	endpointAreaCode      = "areaCode2"
	endpointAreaBasedList = "areaBasedList2"
	endpointLocationBased = "locationBasedList2"
	endpointSearchKeyword = "searchKeyword2"
	endpointDetailCommon  = "detailCommon2"
	endpointDetailIntro   = "detailIntro2"
	endpointDetailImage   = "detailImage2"
	endpointDetailPetTour = "detailPetTour2"
)

const (
	defaultPageSize = 10
	regionsPageSize = 100
)

type client struct {
	caller     *caller
	baseURL    string
	serviceKey string
	mobileOS   string
	mobileApp  string
	logger     *zap.Logger
}

// NewClient создает новый клиент Tour API
func NewClient(cfg *config.TourAPIConfig, recorder *CallRecorder, logger *zap.Logger) repository.TourAPIRepository {
	return &client{
		caller:     newCaller(cfg.RequestTimeout, cfg.MaxRetries, cfg.Retry5xx, recorder, logger),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		mobileOS:   cfg.MobileOS,
		mobileApp:  cfg.MobileApp,
		logger:     logger,
	}
}

// buildURL добавляет обязательные протокольные параметры к каждому запросу;
// опциональные параметры с пустыми значениями не передаются,
// иначе upstream отвечает ошибкой валидации параметров.
func (c *client) buildURL(endpoint string, params map[string]string) string {
	values := url.Values{}
	values.Set("serviceKey", c.serviceKey)
	values.Set("MobileOS", c.mobileOS)
	values.Set("MobileApp", c.mobileApp)
	values.Set("_type", "json")

	for key, value := range params {
		if value != "" {
			values.Set(key, value)
		}
	}

	return fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, values.Encode())
}

// rawRegion - запись справочника регионов из areaCode2
type rawRegion struct {
	Code flexString `json:"code"`
	Name string     `json:"name"`
}

// rawListingItem - сырая запись листинга/деталей из upstream
type rawListingItem struct {
	ContentID     flexString `json:"contentid"`
	ContentTypeID flexString `json:"contenttypeid"`
	Title         string     `json:"title"`
	Addr1         string     `json:"addr1"`
	Addr2         string     `json:"addr2"`
	MapX          string     `json:"mapx"`
	MapY          string     `json:"mapy"`
	FirstImage    string     `json:"firstimage"`
	FirstImage2   string     `json:"firstimage2"`
	Tel           string     `json:"tel"`
	Cat1          string     `json:"cat1"`
	Cat2          string     `json:"cat2"`
	Cat3          string     `json:"cat3"`
	ModifiedTime  flexString `json:"modifiedtime"`

	// Поля, присутствующие только в detailCommon2
	Overview string `json:"overview"`
	Zipcode  string `json:"zipcode"`
	Homepage string `json:"homepage"`
}

func (r rawListingItem) toListingItem() domain.ListingItem {
	item := domain.ListingItem{
		ContentID:     string(r.ContentID),
		ContentTypeID: string(r.ContentTypeID),
		Title:         r.Title,
		Addr1:         r.Addr1,
		Addr2:         r.Addr2,
		FirstImage:    r.FirstImage,
		FirstImage2:   r.FirstImage2,
		Tel:           r.Tel,
		Cat1:          r.Cat1,
		Cat2:          r.Cat2,
		Cat3:          r.Cat3,
		ModifiedTime:  string(r.ModifiedTime),
	}

	// Координатам upstream нельзя доверять: валидируем, а не конвертируем вслепую
	vx := utils.ValidateMapX(r.MapX)
	vy := utils.ValidateMapY(r.MapY)
	if vx.Valid && vy.Valid {
		item.Coordinate = utils.Coordinate{Lon: vx.Value, Lat: vy.Value}
		item.HasCoordinates = true
	}

	return item
}

type rawImage struct {
	ContentID     flexString `json:"contentid"`
	OriginImgURL  string     `json:"originimgurl"`
	SmallImageURL string     `json:"smallimageurl"`
	ImgName       string     `json:"imgname"`
	SerialNum     flexString `json:"serialnum"`
}

type rawPetInfo struct {
	ContentID        flexString `json:"contentid"`
	AcmpyTypeCd      string     `json:"acmpyTypeCd"`
	AcmpyPsblCpam    string     `json:"acmpyPsblCpam"`
	AcmpyNeedMtr     string     `json:"acmpyNeedMtr"`
	RelaPosesFclty   string     `json:"relaPosesFclty"`
	RelaFrnshPrdlst  string     `json:"relaFrnshPrdlst"`
	RelaRntlPrdlst   string     `json:"relaRntlPrdlst"`
	RelaPurcPrdlst   string     `json:"relaPurcPrdlst"`
	RelaAcdntRiskMtr string     `json:"relaAcdntRiskMtr"`
	EtcAcmpyInfo     string     `json:"etcAcmpyInfo"`
}

// ListRegions возвращает справочник регионов (или районов при непустом parentCode)
func (c *client) ListRegions(ctx context.Context, parentCode string) ([]domain.RegionDescriptor, error) {
	env, err := c.fetch(ctx, endpointAreaCode, map[string]string{
		"numOfRows": strconv.Itoa(regionsPageSize),
		"pageNo":    "1",
		"areaCode":  parentCode,
	})
	if err != nil {
		return nil, err
	}

	raws, err := decodeItems[rawRegion](env.Response.Body.Items.Item)
	if err != nil {
		c.logger.Error("Failed to decode region items", zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned malformed region items")
	}

	regions := make([]domain.RegionDescriptor, 0, len(raws))
	for _, r := range raws {
		regions = append(regions, domain.RegionDescriptor{
			Code: string(r.Code),
			Name: r.Name,
		})
	}

	return regions, nil
}

// ListByArea возвращает страницу листинга по региону и/или типу контента
func (c *client) ListByArea(ctx context.Context, q domain.ListQuery) (*domain.ListingPage, error) {
	return c.fetchListingPage(ctx, endpointAreaBasedList, map[string]string{
		"numOfRows":     strconv.Itoa(normalizePageSize(q.PageSize)),
		"pageNo":        strconv.Itoa(normalizePageNo(q.PageNo)),
		"areaCode":      q.AreaCode,
		"contentTypeId": q.ContentTypeID,
		"arrange":       q.Arrange,
	})
}

// ListNearby возвращает страницу объектов вокруг точки.
// Радиус меньше либо равный нулю приводится к 1000 метрам.
func (c *client) ListNearby(ctx context.Context, q domain.NearbyQuery) (*domain.ListingPage, error) {
	radius := q.RadiusMeters
	if radius <= 0 {
		radius = 1000
	}

	return c.fetchListingPage(ctx, endpointLocationBased, map[string]string{
		"mapX":          strconv.FormatFloat(q.Lon, 'f', -1, 64),
		"mapY":          strconv.FormatFloat(q.Lat, 'f', -1, 64),
		"radius":        strconv.Itoa(radius),
		"numOfRows":     strconv.Itoa(normalizePageSize(q.PageSize)),
		"pageNo":        strconv.Itoa(normalizePageNo(q.PageNo)),
		"contentTypeId": q.ContentTypeID,
	})
}

// SearchByKeyword ищет объекты по ключевому слову.
// Пустое слово отклоняется до любого сетевого вызова.
func (c *client) SearchByKeyword(ctx context.Context, q domain.SearchQuery) (*domain.ListingPage, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if keyword == "" {
		return nil, apperrors.ErrBlankKeyword
	}

	return c.fetchListingPage(ctx, endpointSearchKeyword, map[string]string{
		"keyword":       keyword,
		"numOfRows":     strconv.Itoa(normalizePageSize(q.PageSize)),
		"pageNo":        strconv.Itoa(normalizePageNo(q.PageNo)),
		"areaCode":      q.AreaCode,
		"contentTypeId": q.ContentTypeID,
		"arrange":       q.Arrange,
	})
}

// GetDetail возвращает детали одного объекта
func (c *client) GetDetail(ctx context.Context, contentID string) (*domain.ListingDetail, error) {
	env, err := c.fetch(ctx, endpointDetailCommon, map[string]string{
		"contentId": contentID,
	})
	if err != nil {
		return nil, err
	}

	raws, err := decodeItems[rawListingItem](env.Response.Body.Items.Item)
	if err != nil {
		c.logger.Error("Failed to decode detail item", zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned a malformed detail item")
	}
	if len(raws) == 0 {
		return nil, apperrors.ErrListingNotFound.WithDetails(map[string]interface{}{
			"content_id": contentID,
		})
	}

	raw := raws[0]
	return &domain.ListingDetail{
		ListingItem: raw.toListingItem(),
		Overview:    raw.Overview,
		Zipcode:     raw.Zipcode,
		Homepage:    raw.Homepage,
	}, nil
}

// GetIntro возвращает режим работы/выходные/парковку.
// Имена полей различаются по типам контента и здесь не нормализуются.
func (c *client) GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.OperatingInfo, error) {
	env, err := c.fetch(ctx, endpointDetailIntro, map[string]string{
		"contentId":     contentID,
		"contentTypeId": contentTypeID,
	})
	if err != nil {
		return nil, err
	}

	raws, err := decodeItems[map[string]interface{}](env.Response.Body.Items.Item)
	if err != nil {
		c.logger.Error("Failed to decode intro item", zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned a malformed intro item")
	}
	if len(raws) == 0 {
		return nil, apperrors.ErrListingNotFound.WithDetails(map[string]interface{}{
			"content_id": contentID,
		})
	}

	fields := make(map[string]string, len(raws[0]))
	for key, value := range raws[0] {
		if key == "contentid" || key == "contenttypeid" {
			continue
		}
		if s, ok := value.(string); ok {
			fields[key] = s
		} else {
			fields[key] = fmt.Sprint(value)
		}
	}

	return &domain.OperatingInfo{
		ContentID:     contentID,
		ContentTypeID: contentTypeID,
		Fields:        fields,
	}, nil
}

// GetImages возвращает изображения объекта; пустой список - не ошибка
func (c *client) GetImages(ctx context.Context, contentID string, pageSize int) ([]domain.ListingImage, error) {
	env, err := c.fetch(ctx, endpointDetailImage, map[string]string{
		"contentId": contentID,
		"imageYN":   "Y",
		"numOfRows": strconv.Itoa(normalizePageSize(pageSize)),
		"pageNo":    "1",
	})
	if err != nil {
		return nil, err
	}

	raws, err := decodeItems[rawImage](env.Response.Body.Items.Item)
	if err != nil {
		c.logger.Error("Failed to decode image items", zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned malformed image items")
	}

	images := make([]domain.ListingImage, 0, len(raws))
	for _, r := range raws {
		images = append(images, domain.ListingImage{
			ContentID: string(r.ContentID),
			OriginURL: r.OriginImgURL,
			SmallURL:  r.SmallImageURL,
			Name:      r.ImgName,
			Serial:    string(r.SerialNum),
		})
	}

	return images, nil
}

// GetPetInfo возвращает pet-информацию объекта.
// Отсутствие данных - норма для большинства объектов: (nil, nil), не ошибка.
func (c *client) GetPetInfo(ctx context.Context, contentID string) (*domain.PetInfo, error) {
	env, err := c.fetch(ctx, endpointDetailPetTour, map[string]string{
		"contentId": contentID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamNotFound) {
			return nil, nil
		}
		return nil, err
	}

	raws, err := decodeItems[rawPetInfo](env.Response.Body.Items.Item)
	if err != nil {
		c.logger.Error("Failed to decode pet info item", zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned a malformed pet info item")
	}
	if len(raws) == 0 {
		return nil, nil
	}

	raw := raws[0]
	return &domain.PetInfo{
		ContentID:        string(raw.ContentID),
		AcmpyTypeCode:    raw.AcmpyTypeCd,
		AcmpyPossible:    raw.AcmpyPsblCpam,
		AcmpyNeeds:       raw.AcmpyNeedMtr,
		RelatedFacility:  raw.RelaPosesFclty,
		RelatedSupplies:  raw.RelaFrnshPrdlst,
		RelatedRental:    raw.RelaRntlPrdlst,
		RelatedPurchase:  raw.RelaPurcPrdlst,
		AccidentResponse: raw.RelaAcdntRiskMtr,
		EtcInfo:          raw.EtcAcmpyInfo,
	}, nil
}

// fetch выполняет вызов и разбирает конверт
func (c *client) fetch(ctx context.Context, endpoint string, params map[string]string) (*envelope, error) {
	body, err := c.caller.Call(ctx, endpoint, c.buildURL(endpoint, params))
	if err != nil {
		return nil, err
	}

	env, err := parseEnvelope(body)
	if err != nil {
		c.logger.Error("Failed to parse upstream envelope",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned a malformed envelope")
	}

	return env, nil
}

func (c *client) fetchListingPage(ctx context.Context, endpoint string, params map[string]string) (*domain.ListingPage, error) {
	env, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	raws, err := decodeItems[rawListingItem](env.Response.Body.Items.Item)
	if err != nil {
		c.logger.Error("Failed to decode listing items",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, apperrors.ErrUpstreamGeneric.WithMessage("Upstream returned malformed listing items")
	}

	items := make([]domain.ListingItem, 0, len(raws))
	for _, r := range raws {
		items = append(items, r.toListingItem())
	}

	return &domain.ListingPage{
		Items:      items,
		TotalCount: env.Response.Body.TotalCount,
	}, nil
}

func normalizePageSize(size int) int {
	if size <= 0 {
		return defaultPageSize
	}
	return size
}

func normalizePageNo(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}
