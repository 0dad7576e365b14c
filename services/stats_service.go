package services

import (
	"context"
	"sync"

	"hotel-admin/backend"
	"hotel-admin/dto"
	"hotel-admin/services/logger"
)

// StatsService reads the backend's two aggregate views. They are always
// presented together, so they are fetched together.
type StatsService struct {
	backend *backend.Client
	log     logger.Logger
}

func NewStatsService(b *backend.Client, log logger.Logger) *StatsService {
	if log == nil {
		log = logger.Nop{}
	}
	return &StatsService{backend: b, log: log}
}

// Overview fetches both views in parallel; either failure fails the
// combined call.
func (s *StatsService) Overview(ctx context.Context) (dto.StatsOverview, error) {
	var (
		overview dto.StatsOverview
		wg       sync.WaitGroup
		errs     = make([]error, 2)
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = s.backend.GetJSON(ctx, backend.RoomsPerArea, &overview.AvailableRoomsPerArea)
	}()
	go func() {
		defer wg.Done()
		errs[1] = s.backend.GetJSON(ctx, backend.RoomCapacity, &overview.HotelRoomCapacity)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.log.Error("stats overview: %v", err)
			return dto.StatsOverview{}, err
		}
	}
	return overview, nil
}
