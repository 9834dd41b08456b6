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
	lineEntity = "lines"
	linePath   = "/lines"
)

type LineService struct {
	Client *client.Client
	Cache  *cache.Query
}

func NewLineService(c *client.Client, q *cache.Query) *LineService {
	return &LineService{Client: c, Cache: q}
}

func (s *LineService) List(ctx context.Context, pageable *model.Pageable, filters map[string]string) (model.Page[model.MetroLine], error) {
	return listPage[model.MetroLine](ctx, s.Client, s.Cache, lineEntity, linePath, pageable, filters)
}

func (s *LineService) Search(ctx context.Context, query string, pageable *model.Pageable) (model.Page[model.MetroLine], error) {
	return s.List(ctx, pageable, searchFilters(query))
}

func (s *LineService) GetByCode(ctx context.Context, code string) (model.MetroLine, error) {
	return getRecord[model.MetroLine](ctx, s.Client, s.Cache, lineEntity, linePath+"/"+code, code)
}

// Save creates a line. The segment chain is validated here, before any
// network call goes out; a broken or empty chain never reaches the API.
func (s *LineService) Save(ctx context.Context, input model.SaveLineInput) (model.MetroLine, error) {
	if err := helper.ValidateSegments(input.Segments); err != nil {
		return model.MetroLine{}, &client.Error{Kind: client.KindValidation, Message: err.Error()}
	}
	if input.Code == "" {
		input.Code = helper.StationCode(input.Name)
	}
	line, err := client.Decode[model.MetroLine](s.Client.Perform(ctx, http.MethodPost, linePath, input, nil))
	if err != nil {
		return line, err
	}
	s.Cache.InvalidateEntity(ctx, lineEntity)
	// Segments carry station back-references, so station records went
	// stale too.
	s.Cache.InvalidateEntity(ctx, stationEntity)
	return line, nil
}

// Update replaces the line, segments included, as one unit.
func (s *LineService) Update(ctx context.Context, code string, input model.SaveLineInput) (model.MetroLine, error) {
	if err := helper.ValidateSegments(input.Segments); err != nil {
		return model.MetroLine{}, &client.Error{Kind: client.KindValidation, Message: err.Error()}
	}
	line, err := client.Decode[model.MetroLine](s.Client.Perform(ctx, http.MethodPut, linePath+"/"+code, input, nil))
	if err != nil {
		return line, err
	}
	s.invalidate(ctx, code)
	s.Cache.InvalidateEntity(ctx, stationEntity)
	return line, nil
}

func (s *LineService) SetStatus(ctx context.Context, code string, status model.LineStatus) (model.MetroLine, error) {
	body := map[string]model.LineStatus{"status": status}
	line, err := client.Decode[model.MetroLine](s.Client.Perform(ctx, http.MethodPatch, linePath+"/"+code+"/status", body, nil))
	if err != nil {
		return line, err
	}
	s.invalidate(ctx, code)
	return line, nil
}

func (s *LineService) Summary(ctx context.Context) (model.LineSummary, error) {
	return getSummary(ctx, s.Client, s.Cache, lineEntity, linePath+"/summary", func() (model.LineSummary, error) {
		page, err := client.FetchPage[model.MetroLine](ctx, s.Client, linePath, &model.Pageable{Page: 0, Size: summaryScanLimit}, nil)
		if err != nil {
			return model.LineSummary{}, err
		}
		total, counts := model.TallyStatus(model.LineStatusMeta, page.Content, func(line model.MetroLine) model.LineStatus { return line.Status })
		return model.LineSummary{
			TotalLines:       total,
			Planned:          counts[model.LinePlanned],
			Operational:      counts[model.LineOperational],
			UnderMaintenance: counts[model.LineUnderMaintenance],
			Closed:           counts[model.LineClosed],
		}, nil
	})
}

func (s *LineService) invalidate(ctx context.Context, code string) {
	s.Cache.InvalidateEntity(ctx, lineEntity)
	s.Cache.InvalidateRecord(ctx, lineEntity, code)
}
