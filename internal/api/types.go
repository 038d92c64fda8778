package api

// Wire types of the platform REST API. Timestamps stay strings: the
// backend emits naive ISO datetimes and the client never computes on them.

type (
	HackathonStatus  string
	TeamStatus       string
	InvitationStatus string
	ExperienceLevel  string
	RolePreference   string
)

const (
	HackathonStatusUpcoming HackathonStatus = "upcoming"
	HackathonStatusActive   HackathonStatus = "active"
	HackathonStatusFinished HackathonStatus = "finished"
)

const (
	TeamStatusOpen   TeamStatus = "open"
	TeamStatusClosed TeamStatus = "closed"
)

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

const (
	ExperienceLevelJunior ExperienceLevel = "junior"
	ExperienceLevelMiddle ExperienceLevel = "middle"
	ExperienceLevelSenior ExperienceLevel = "senior"
)

const (
	RolePreferenceFrontend  RolePreference = "frontend"
	RolePreferenceBackend   RolePreference = "backend"
	RolePreferenceFullstack RolePreference = "fullstack"
	RolePreferenceDesigner  RolePreference = "designer"
)

type TelegramAuthRequest struct {
	TelegramID       int64  `json:"telegram_id"`
	TelegramUsername string `json:"telegram_username"`
	FullName         string `json:"full_name"`
	AvatarURL        string `json:"avatar_url,omitempty"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
}

type User struct {
	ID               int64           `json:"id"`
	TelegramID       int64           `json:"telegram_id"`
	TelegramUsername string          `json:"telegram_username,omitempty"`
	FullName         string          `json:"full_name"`
	Bio              string          `json:"bio,omitempty"`
	Skills           []string        `json:"skills"`
	RolePreference   RolePreference  `json:"role_preference,omitempty"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	AvatarURL        string          `json:"avatar_url,omitempty"`
	CreatedAt        string          `json:"created_at"`
}

type UserListItem struct {
	ID              int64           `json:"id"`
	FullName        string          `json:"full_name"`
	Skills          []string        `json:"skills"`
	RolePreference  RolePreference  `json:"role_preference,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	AvatarURL       string          `json:"avatar_url,omitempty"`
}

type UserUpdateRequest struct {
	FullName        *string          `json:"full_name,omitempty"`
	Bio             *string          `json:"bio,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	RolePreference  *RolePreference  `json:"role_preference,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experience_level,omitempty"`
	AvatarURL       *string          `json:"avatar_url,omitempty"`
}

type Hackathon struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Status      HackathonStatus `json:"status"`
	MaxTeamSize int             `json:"max_team_size"`
	CreatedAt   string          `json:"created_at"`
}

// HackathonDetail is the single-hackathon view enriched with the current
// user's registration state.
type HackathonDetail struct {
	Hackathon
	IsRegistered bool   `json:"is_registered"`
	TeamID       *int64 `json:"team_id"`
}

type HackathonCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MaxTeamSize int    `json:"max_team_size"`
}

type HackathonUpdateRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
	Status      *HackathonStatus `json:"status,omitempty"`
	MaxTeamSize *int             `json:"max_team_size,omitempty"`
}

type TeamMember struct {
	ID             int64          `json:"id"`
	FullName       string         `json:"full_name"`
	RolePreference RolePreference `json:"role_preference,omitempty"`
	Skills         []string       `json:"skills"`
}

type Team struct {
	ID          int64        `json:"id"`
	HackathonID int64        `json:"hackathon_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	CaptainID   int64        `json:"captain_id"`
	Status      TeamStatus   `json:"status"`
	CreatedAt   string       `json:"created_at"`
	Members     []TeamMember `json:"members"`
}

type TeamDetail struct {
	Team
	Captain User `json:"captain"`
}

type TeamCreateRequest struct {
	HackathonID int64  `json:"hackathon_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MyTeamItem struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	HackathonID   int64      `json:"hackathon_id"`
	HackathonName string     `json:"hackathon_name"`
	Status        TeamStatus `json:"status"`
}

type Invitation struct {
	ID          int64            `json:"id"`
	TeamID      int64            `json:"team_id"`
	UserID      int64            `json:"user_id"`
	SentByID    int64            `json:"sent_by_id"`
	Status      InvitationStatus `json:"status"`
	CreatedAt   string           `json:"created_at"`
	RespondedAt *string          `json:"responded_at"`
	Team        *Team            `json:"team,omitempty"`
	SentBy      *User            `json:"sent_by,omitempty"`
}

type InvitationAcceptRequest struct {
	Accept bool `json:"accept"`
}

type HackathonAnalytics struct {
	TotalParticipants       int            `json:"total_participants"`
	TotalTeams              int            `json:"total_teams"`
	ParticipantsWithoutTeam int            `json:"participants_without_team"`
	ParticipantsInTeam      int            `json:"participants_in_team"`
	AverageTeamSize         float64        `json:"average_team_size"`
	SkillsFrequency         map[string]int `json:"skills_frequency"`
	ExperienceDistribution  map[string]int `json:"experience_distribution"`
}
