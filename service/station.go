package service

import (
	"context"
	"net/http"

	"metroll_cms/cache"
	"metroll_cms/client"
	"metroll_cms/helper"
	"metroll_cms/model"
)

const (
	stationEntity = "stations"
	stationPath   = "/stations"
)

type StationService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewStationService(c *client.Client, q *cache.Query) *StationService {
	return &StationService{Client: c, Cache: q}
}

func (s *StationService) List(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.Station], error) {
	return listPage[model.Station](ctx, s.Client, s.Cache, stationEntity, stationPath, pageable, filters)
}

func (s *StationService) Search(ctx context.Context, query string, pageable *model.Pageable) (model.Page[model.Station], error) {
	return s.List(ctx, pageable, searchFilters(query))
}

func (s *StationService) GetByCode(ctx context.Context, code string) (model.Station, error) {
	return getRecord[model.Station](ctx, s.Client, s.Cache, stationEntity, stationPath+"/"+code, code)
}

// Save creates a station. A blank code is derived from the name; after
// creation the code never changes.
func (s *StationService) Save(ctx context.Context, input model.SaveStationInput) (model.Station, error) {
	if input.Code == "" {
		input.Code = helper.StationCode(input.Name)
	}
	station, err := client.Decode[model.Station](s.Client.Perform(ctx, http.MethodPost, stationPath, input, nil))
	if err != nil {
		return station, err
	}
	s.Cache.InvalidateEntity(ctx, stationEntity)
	return station, nil
}

func (s *StationService) Update(ctx context.Context, code string, input model.UpdateStationInput) (model.Station, error) {
	station, err := client.Decode[model.Station](s.Client.Perform(ctx, http.MethodPut, stationPath+"/"+code, input, nil))
	if err != nil {
		return station, err
	}
	s.invalidate(ctx, code)
	return station, nil
}

// SetStatus moves a station between operational states; any transition
// is allowed.
func (s *StationService) SetStatus(ctx context.Context, code string, status model.StationStatus) (model.Station, error) {
	body := map[string]model.StationStatus{"status": status}
	station, err := client.Decode[model.Station](s.Client.Perform(ctx, http.MethodPatch, stationPath+"/"+code+"/status", body, nil))
	if err != nil {
		return station, err
	}
	s.invalidate(ctx, code)
	return station, nil
}

func (s *StationService) Summary(ctx context.Context) (model.StationSummary, error) {
	return getSummary(ctx, s.Client, s.Cache, stationEntity, stationPath+"/summary", func() (model.StationSummary, error) {
		page, err := client.FetchPage[model.Station](ctx, s.Client, stationPath, &model.Pageable{Page: 0, Size: summaryScanLimit}, nil)
		if err != nil {
			return model.StationSummary{}, err
		}
		total, counts := model.TallyStatus(model.StationStatusMeta, page.Content, func(st model.Station) model.StationStatus { return st.Status })
		return model.StationSummary{
			TotalStations:    total,
			Operational:      counts[model.StationOperational],
			UnderMaintenance: counts[model.StationUnderMaintenance],
			Closed:           counts[model.StationClosed],
		}, nil
	})
}

func (s *StationService) invalidate(ctx context.Context, code string) {
	s.Cache.InvalidateEntity(ctx, stationEntity)
	s.Cache.InvalidateRecord(ctx, stationEntity, code)
}
