// Package app is the client shell: it keeps who is signed in, drives the
// navigation stack and calls the façade use cases for each screen action.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/integration"
	"github.com/atharsaifi001-eng/NEAT-RE/navigation"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/auth"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/chat"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/commission"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/kyc"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/lead"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/listing"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase/visit"
)

// Services groups the façade use cases the shell talks to.
type Services struct {
	Auth        *auth.UseCase
	Listings    *listing.UseCase
	Chat        *chat.UseCase
	KYC         *kyc.UseCase
	Commissions *commission.UseCase
	Visits      *visit.UseCase
	Leads       *lead.UseCase
	Dialer      integration.Dialer
}

// App holds the per-device state of one client.
type App struct {
	mu      sync.Mutex
	svc     Services
	nav     *navigation.Stack
	user    *domain.User
	session *domain.Session
	logger  *zap.Logger
}

func New(svc Services, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		svc:    svc,
		nav:    navigation.NewStack(navigation.Splash{}),
		logger: logger,
	}
}

func (a *App) Navigation() *navigation.Stack {
	return a.nav
}

// User returns the signed-in user, or nil for a guest.
func (a *App) User() *domain.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user.Clone()
}

func (a *App) Session() *domain.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil
	}
	out := *a.session
	return &out
}

// Back pops the current screen; the root stays.
func (a *App) Back() bool {
	return a.nav.Pop()
}

// FinishSplash leaves the splash screen for role selection without a way back.
func (a *App) FinishSplash() error {
	if err := a.expect(navigation.NameSplash); err != nil {
		return err
	}
	return a.nav.ReplaceRoot(navigation.RoleSelection{})
}

func (a *App) SelectRole(role domain.Role) error {
	if err := a.expect(navigation.NameRoleSelection); err != nil {
		return err
	}
	if !role.IsValid() {
		return domain.NewValidationError("unknown role", "Role")
	}
	return a.nav.Push(navigation.Auth{Role: role})
}

// RequestOTP asks for a one-time code for identifier.
func (a *App) RequestOTP(ctx context.Context, identifier string) (*auth.OTPResult, error) {
	if _, err := a.authScreen(); err != nil {
		return nil, err
	}
	return a.svc.Auth.SendOTP(ctx, identifier)
}

// Login verifies the code, signs the user in for the role chosen on the auth
// screen and lands on that role's home with a fresh history.
func (a *App) Login(ctx context.Context, identifier, code string) (*domain.User, error) {
	screen, err := a.authScreen()
	if err != nil {
		return nil, err
	}
	res, err := a.svc.Auth.Authenticate(ctx, auth.AuthenticateInput{
		Identifier: identifier,
		Code:       code,
		Role:       screen.Role,
	})
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.user = res.User
	a.session = res.Session
	a.mu.Unlock()

	if err := a.nav.ReplaceRoot(navigation.HomeFor(screen.Role)); err != nil {
		return nil, err
	}
	a.logger.Info("signed in", zap.String("user_id", res.User.ID), zap.String("role", string(screen.Role)))
	return res.User.Clone(), nil
}

// Browse lists properties for the home feed.
func (a *App) Browse(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	return a.svc.Listings.ListProperties(ctx, filter)
}

func (a *App) OpenListing(l domain.Listing) error {
	return a.nav.Push(navigation.ListingDetail{Listing: l})
}

// OpenChat opens the room of a listing.
func (a *App) OpenChat(l domain.Listing) error {
	return a.nav.Push(navigation.Chat{RoomID: domain.RoomForListing(l.ID), With: l.Title})
}

// SendChat posts text to the room on screen as the signed-in user.
func (a *App) SendChat(ctx context.Context, text string) error {
	screen, ok := a.nav.Current().(navigation.Chat)
	if !ok {
		return a.wrongScreen(navigation.NameChat)
	}
	in := chat.MessageInput{Text: text}
	if u := a.User(); u != nil {
		in.From = u.ID
		in.Name = u.Name
	}
	_, err := a.svc.Chat.SendMessage(ctx, screen.RoomID, in)
	return err
}

// ChatHistory returns the messages of the room on screen.
func (a *App) ChatHistory(ctx context.Context) ([]domain.ChatMessage, error) {
	screen, ok := a.nav.Current().(navigation.Chat)
	if !ok {
		return nil, a.wrongScreen(navigation.NameChat)
	}
	return a.svc.Chat.GetChat(ctx, screen.RoomID)
}

// ToggleBoost flips the boost of the listing on screen and refreshes the
// snapshot the detail screen shows.
func (a *App) ToggleBoost(ctx context.Context) (domain.Listing, error) {
	screen, ok := a.nav.Current().(navigation.ListingDetail)
	if !ok {
		return domain.Listing{}, a.wrongScreen(navigation.NameListingDetail)
	}
	updated := *screen.Listing.Clone()
	updated.Boosted = !updated.Boosted
	if _, err := a.svc.Listings.ToggleBoost(ctx, updated.ID, updated.Boosted); err != nil {
		return screen.Listing, err
	}
	if err := a.nav.ReplaceTop(navigation.ListingDetail{Listing: updated}); err != nil {
		return screen.Listing, err
	}
	return updated, nil
}

// OpenVisitScheduler moves from a listing to booking a visit for it.
func (a *App) OpenVisitScheduler() error {
	screen, ok := a.nav.Current().(navigation.ListingDetail)
	if !ok {
		return a.wrongScreen(navigation.NameListingDetail)
	}
	return a.nav.Push(navigation.VisitScheduler{Listing: screen.Listing})
}

// ScheduleVisit books the listing on the scheduler screen for the signed-in user.
func (a *App) ScheduleVisit(ctx context.Context, when string) (string, error) {
	screen, ok := a.nav.Current().(navigation.VisitScheduler)
	if !ok {
		return "", a.wrongScreen(navigation.NameVisitScheduler)
	}
	u, err := a.requireUser()
	if err != nil {
		return "", err
	}
	return a.svc.Visits.ScheduleVisit(ctx, visit.ScheduleInput{
		ListingID: screen.Listing.ID,
		UserID:    u.ID,
		When:      when,
	})
}

func (a *App) CheckIn(ctx context.Context, visitID string, lat, lng float64) (bool, error) {
	return a.svc.Visits.CheckIn(ctx, visit.CheckInInput{VisitID: visitID, Lat: lat, Lng: lng})
}

func (a *App) OpenAddListing() error {
	return a.nav.Push(navigation.AddListing{})
}

// CreateListing submits the add-listing form as the signed-in dealer and
// returns to the dealer home with no way back into the form.
func (a *App) CreateListing(ctx context.Context, in listing.CreateInput) (string, error) {
	if err := a.expect(navigation.NameAddListing); err != nil {
		return "", err
	}
	u, err := a.requireUser()
	if err != nil {
		return "", err
	}
	if in.DealerID == "" {
		in.DealerID = u.ID
	}
	id, err := a.svc.Listings.CreateListing(ctx, in)
	if err != nil {
		return "", err
	}
	if err := a.nav.ReplaceRoot(navigation.DealerHome{}); err != nil {
		return "", err
	}
	return id, nil
}

// ShowAllListings switches a dealer to the buyer feed.
func (a *App) ShowAllListings() error {
	return a.nav.ReplaceRoot(navigation.BuyerHome{})
}

func (a *App) OpenMegaMenu() error {
	return a.nav.Push(navigation.MegaMenu{})
}

// OpenFromMenu opens one of the parameterless screens by name.
func (a *App) OpenFromMenu(name navigation.Name) error {
	s, ok := navigation.Flat(name)
	if !ok {
		return domain.NewValidationError(fmt.Sprintf("screen %s cannot be opened from the menu", name), "Name")
	}
	return a.nav.Push(s)
}

func (a *App) OpenDetails(c navigation.Contact) error {
	return a.nav.Push(navigation.Details{Contact: c})
}

// Call dials from a listing detail or contact details screen. Listings carry
// no phone number, so they go to the support line.
func (a *App) Call(ctx context.Context) (string, error) {
	number := integration.SupportNumber
	switch screen := a.nav.Current().(type) {
	case navigation.ListingDetail:
	case navigation.Details:
		if screen.Contact.Phone != "" {
			number = screen.Contact.Phone
		}
	default:
		return "", a.wrongScreen(navigation.NameListingDetail)
	}
	if a.svc.Dialer == nil {
		a.logger.Warn("no dialer configured", zap.String("number", number))
		return number, nil
	}
	if err := a.svc.Dialer.Dial(ctx, number); err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "call failed", err)
	}
	return number, nil
}

// UploadDocument submits a KYC document for the signed-in user.
func (a *App) UploadDocument(ctx context.Context, docType, uri string) (string, error) {
	u, err := a.requireUser()
	if err != nil {
		return "", err
	}
	return a.svc.KYC.UploadDoc(ctx, kyc.UploadInput{UserID: u.ID, DocType: docType, URI: uri})
}

// LogCommission records a commission for the signed-in user with the default split.
func (a *App) LogCommission(ctx context.Context, amount float64, city string) (string, error) {
	u, err := a.requireUser()
	if err != nil {
		return "", err
	}
	return a.svc.Commissions.RecordCommission(ctx, commission.RecordInput{UserID: u.ID, Amount: amount, City: city})
}

func (a *App) RequestPayout(ctx context.Context, commissionID string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	return a.svc.Commissions.RequestPayout(ctx, u.ID, commissionID)
}

// AutoAssignLead gives the signed-in user a matched lead.
func (a *App) AutoAssignLead(ctx context.Context) (*domain.Lead, error) {
	u, err := a.requireUser()
	if err != nil {
		return nil, err
	}
	return a.svc.Leads.AutoAssign(ctx, u.ID)
}

func (a *App) authScreen() (navigation.Auth, error) {
	screen, ok := a.nav.Current().(navigation.Auth)
	if !ok {
		return navigation.Auth{}, a.wrongScreen(navigation.NameAuth)
	}
	return screen, nil
}

func (a *App) expect(name navigation.Name) error {
	if a.nav.Current().Name() != name {
		return a.wrongScreen(name)
	}
	return nil
}

func (a *App) wrongScreen(want navigation.Name) error {
	return domain.NewError(domain.ErrCodeConflict,
		fmt.Sprintf("action needs screen %s, current is %s", want, a.nav.Current().Name()))
}

func (a *App) requireUser() (*domain.User, error) {
	u := a.User()
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}
