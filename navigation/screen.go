// Package navigation models the client screen flow: a closed set of screens,
// each carrying the parameters it needs, and a history stack that is never empty.
package navigation

import "github.com/atharsaifi001-eng/NEAT-RE/domain"

// Name identifies a screen kind.
type Name string

const (
	NameSplash           Name = "SPLASH"
	NameRoleSelection    Name = "ROLES"
	NameAuth             Name = "AUTH"
	NameBuyerHome        Name = "BUYER_HOME"
	NameDealerHome       Name = "DEALER_HOME"
	NameAdminPanel       Name = "ADMIN"
	NameListingDetail    Name = "LISTING"
	NameAddListing       Name = "ADD"
	NameChat             Name = "CHAT"
	NameVisitScheduler   Name = "VISIT"
	NameKYC              Name = "KYC"
	NameCommissionOps    Name = "COMMISSION_OPS"
	NameLeads            Name = "LEADS"
	NameMegaMenu         Name = "MEGA"
	NameBuyers           Name = "BUYERS"
	NameSellers          Name = "SELLERS"
	NameProfit           Name = "PROFIT"
	NameDealers          Name = "DEALERS"
	NameCommissionReport Name = "COMMISSION_REPORT"
	NamePayouts          Name = "PAYOUTS"
	NameProfile          Name = "PROFILE_SIMPLE"
	NameDetails          Name = "DETAILS"
	NameSimpleLogin      Name = "LOGIN_SIMPLE"
)

// Screen is implemented only by the types in this package, so a switch over
// them is exhaustive and a screen cannot exist without its parameters.
type Screen interface {
	Name() Name
	isScreen()
}

// Contact is a person shown on the details screen.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

type (
	Splash        struct{}
	RoleSelection struct{}
	// Auth collects the identifier and OTP for the chosen role.
	Auth       struct{ Role domain.Role }
	BuyerHome  struct{}
	DealerHome struct{}
	AdminPanel struct{}
	// ListingDetail holds a snapshot of the listing being viewed.
	ListingDetail struct{ Listing domain.Listing }
	AddListing    struct{}
	// Chat is a room plus the display name of the other party.
	Chat struct {
		RoomID string
		With   string
	}
	VisitScheduler   struct{ Listing domain.Listing }
	KYC              struct{}
	CommissionOps    struct{}
	Leads            struct{}
	MegaMenu         struct{}
	Buyers           struct{}
	Sellers          struct{}
	Profit           struct{}
	Dealers          struct{}
	CommissionReport struct{}
	Payouts          struct{}
	Profile          struct{}
	Details          struct{ Contact Contact }
	SimpleLogin      struct{}
)

func (Splash) Name() Name           { return NameSplash }
func (RoleSelection) Name() Name    { return NameRoleSelection }
func (Auth) Name() Name             { return NameAuth }
func (BuyerHome) Name() Name        { return NameBuyerHome }
func (DealerHome) Name() Name       { return NameDealerHome }
func (AdminPanel) Name() Name       { return NameAdminPanel }
func (ListingDetail) Name() Name    { return NameListingDetail }
func (AddListing) Name() Name       { return NameAddListing }
func (Chat) Name() Name             { return NameChat }
func (VisitScheduler) Name() Name   { return NameVisitScheduler }
func (KYC) Name() Name              { return NameKYC }
func (CommissionOps) Name() Name    { return NameCommissionOps }
func (Leads) Name() Name            { return NameLeads }
func (MegaMenu) Name() Name         { return NameMegaMenu }
func (Buyers) Name() Name           { return NameBuyers }
func (Sellers) Name() Name          { return NameSellers }
func (Profit) Name() Name           { return NameProfit }
func (Dealers) Name() Name          { return NameDealers }
func (CommissionReport) Name() Name { return NameCommissionReport }
func (Payouts) Name() Name          { return NamePayouts }
func (Profile) Name() Name          { return NameProfile }
func (Details) Name() Name          { return NameDetails }
func (SimpleLogin) Name() Name      { return NameSimpleLogin }

func (Splash) isScreen()           {}
func (RoleSelection) isScreen()    {}
func (Auth) isScreen()             {}
func (BuyerHome) isScreen()        {}
func (DealerHome) isScreen()       {}
func (AdminPanel) isScreen()       {}
func (ListingDetail) isScreen()    {}
func (AddListing) isScreen()       {}
func (Chat) isScreen()             {}
func (VisitScheduler) isScreen()   {}
func (KYC) isScreen()              {}
func (CommissionOps) isScreen()    {}
func (Leads) isScreen()            {}
func (MegaMenu) isScreen()         {}
func (Buyers) isScreen()           {}
func (Sellers) isScreen()          {}
func (Profit) isScreen()           {}
func (Dealers) isScreen()          {}
func (CommissionReport) isScreen() {}
func (Payouts) isScreen()          {}
func (Profile) isScreen()          {}
func (Details) isScreen()          {}
func (SimpleLogin) isScreen()      {}

// flat holds the screens that need no parameters and can be opened by name
// from the mega menu.
var flat = map[Name]Screen{
	NameKYC:              KYC{},
	NameCommissionOps:    CommissionOps{},
	NameLeads:            Leads{},
	NameBuyers:           Buyers{},
	NameSellers:          Sellers{},
	NameProfit:           Profit{},
	NameDealers:          Dealers{},
	NameCommissionReport: CommissionReport{},
	NamePayouts:          Payouts{},
	NameProfile:          Profile{},
	NameSimpleLogin:      SimpleLogin{},
}

// Flat returns the parameterless screen registered under name.
func Flat(name Name) (Screen, bool) {
	s, ok := flat[name]
	return s, ok
}

// HomeFor returns the landing screen of a signed-in role.
func HomeFor(role domain.Role) Screen {
	switch role {
	case domain.RoleBuyer:
		return BuyerHome{}
	case domain.RoleAdmin:
		return AdminPanel{}
	default:
		return DealerHome{}
	}
}
