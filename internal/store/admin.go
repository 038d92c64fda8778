package store

import (
	"context"
	"net/http"

	"github.com/hackplatform/client-go/internal/api"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const (
	adminHackathonsPath         = "/api/admin/hackathons"
	adminAnalyticsPath          = "/api/admin/{hackathonID}/analytics"
	adminParticipantsExportPath = "/api/admin/{hackathonID}/participants/export"
	adminTeamsExportPath        = "/api/admin/{hackathonID}/teams/export"
)

const (
	msgFetchAnalyticsFailed     = "Ошибка загрузки аналитики"
	msgCreateHackathonFailed    = "Ошибка создания хакатона"
	msgUpdateHackathonFailed    = "Ошибка обновления хакатона"
	msgExportParticipantsFailed = "Ошибка экспорта участников"
	msgExportTeamsFailed        = "Ошибка экспорта команд"
)

// AdminStore is the only store backed by the admin-scoped client.
type AdminStore struct {
	Tracker
	client     pkghttp.Client
	hackathons []api.Hackathon
	analytics  *api.HackathonAnalytics
}

type AdminState struct {
	Hackathons []api.Hackathon
	Analytics  *api.HackathonAnalytics
	Loading    bool
	Err        string
}

func NewAdminStore(clients api.ClientPair) *AdminStore {
	return &AdminStore{client: clients.Admin}
}

func (s *AdminStore) State() AdminState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AdminState{
		Hackathons: append([]api.Hackathon(nil), s.hackathons...),
		Analytics:  s.analytics,
		Loading:    s.loading,
		Err:        s.err,
	}
}

func (s *AdminStore) FetchHackathons(ctx context.Context) ([]api.Hackathon, error) {
	return run(&s.Tracker, msgFetchHackathonsFailed, func() ([]api.Hackathon, error) {
		hackathons, err := send[[]api.Hackathon](s.client.NewRequest(ctx), http.MethodGet, adminHackathonsPath)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.hackathons = hackathons
		s.mu.Unlock()
		return hackathons, nil
	})
}

func (s *AdminStore) FetchAnalytics(ctx context.Context, hackathonID int64) (*api.HackathonAnalytics, error) {
	return run(&s.Tracker, msgFetchAnalyticsFailed, func() (*api.HackathonAnalytics, error) {
		analytics, err := send[api.HackathonAnalytics](
			s.client.NewRequest(ctx).SetPathParam("hackathonID", formatID(hackathonID)),
			http.MethodGet, adminAnalyticsPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.analytics = &analytics
		s.mu.Unlock()
		return &analytics, nil
	})
}

func (s *AdminStore) CreateHackathon(ctx context.Context, req api.HackathonCreateRequest) (*api.Hackathon, error) {
	return run(&s.Tracker, msgCreateHackathonFailed, func() (*api.Hackathon, error) {
		hackathon, err := send[api.Hackathon](
			s.client.NewRequest(ctx).SetBody(req),
			http.MethodPost, hackathonsPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.hackathons = append(s.hackathons, hackathon)
		s.mu.Unlock()
		return &hackathon, nil
	})
}

func (s *AdminStore) UpdateHackathon(ctx context.Context, hackathonID int64, req api.HackathonUpdateRequest) (*api.Hackathon, error) {
	return run(&s.Tracker, msgUpdateHackathonFailed, func() (*api.Hackathon, error) {
		hackathon, err := send[api.Hackathon](
			s.client.NewRequest(ctx).
				SetPathParam("hackathonID", formatID(hackathonID)).
				SetBody(req),
			http.MethodPut, hackathonByIDPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		for i := range s.hackathons {
			if s.hackathons[i].ID == hackathonID {
				s.hackathons[i] = hackathon
				break
			}
		}
		s.mu.Unlock()
		return &hackathon, nil
	})
}

// ExportParticipants downloads the participants spreadsheet. Exports do
// not toggle the loading flag, only record a failure message.
func (s *AdminStore) ExportParticipants(ctx context.Context, hackathonID int64) ([]byte, error) {
	return s.export(ctx, hackathonID, adminParticipantsExportPath, msgExportParticipantsFailed)
}

func (s *AdminStore) ExportTeams(ctx context.Context, hackathonID int64) ([]byte, error) {
	return s.export(ctx, hackathonID, adminTeamsExportPath, msgExportTeamsFailed)
}

func (s *AdminStore) export(ctx context.Context, hackathonID int64, path, fallback string) ([]byte, error) {
	data, err := sendRaw(
		s.client.NewRequest(ctx).SetPathParam("hackathonID", formatID(hackathonID)),
		http.MethodGet, path,
	)
	if err != nil {
		s.setErr(Message(err, "", fallback))
		return nil, err
	}
	return data, nil
}

func (s *AdminStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hackathons = nil
	s.analytics = nil
	s.err = ""
}
