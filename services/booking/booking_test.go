package booking

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"aamer/models"
	"aamer/utils"
)

// In-memory fakes.

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	if b.ID == "" {
		b.ID = utils.NewID()
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByServiceID(ctx context.Context, serviceID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ServiceID == serviceID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookingRepo) FindDuplicate(ctx context.Context, userID, providerID, serviceID, bookingType string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.UserID == userID && b.ProviderID == providerID && b.ServiceID == serviceID && b.BookingType == bookingType {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByParticipant(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID || b.ProviderID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByProviderID(ctx context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetCompleted(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusCompleted {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, ok := f.bookings[id]; ok {
		delete(f.bookings, id)
		return true, nil
	}
	return false, nil
}

type fakeRequestRepo struct {
	requests map[string]*models.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, r *models.Request) error {
	if r.ID == "" {
		r.ID = utils.NewID()
	}
	if r.Status == "" {
		r.Status = models.RequestStatusPending
	}
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (*models.Request, error) {
	if r, ok := f.requests[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRequestRepo) GetAll(ctx context.Context, status string) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if status == "" || r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) GetByUserID(ctx context.Context, userID string) ([]models.Request, error) {
	var out []models.Request
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r, ok := f.requests[id]; ok {
		r.Status = status
	}
	return nil
}

type fakeOfferingRepo struct {
	offerings map[string]*models.Offering
}

func newFakeOfferingRepo() *fakeOfferingRepo {
	return &fakeOfferingRepo{offerings: make(map[string]*models.Offering)}
}

func (f *fakeOfferingRepo) Create(ctx context.Context, o *models.Offering) error {
	if o.ID == "" {
		o.ID = utils.NewID()
	}
	if o.Status == "" {
		o.Status = models.OfferingStatusPending
	}
	cp := *o
	f.offerings[o.ID] = &cp
	return nil
}

func (f *fakeOfferingRepo) GetByID(ctx context.Context, id string) (*models.Offering, error) {
	if o, ok := f.offerings[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeOfferingRepo) GetAll(ctx context.Context) ([]models.Offering, error) {
	var out []models.Offering
	for _, o := range f.offerings {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOfferingRepo) GetByStatus(ctx context.Context, status string) ([]models.Offering, error) {
	var out []models.Offering
	for _, o := range f.offerings {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOfferingRepo) GetByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Offering, error) {
	var out []models.Offering
	for _, o := range f.offerings {
		if o.ProviderID == providerID && o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOfferingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if o, ok := f.offerings[id]; ok {
		o.Status = status
	}
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (f *fakeProviderRepo) Create(ctx context.Context, p *models.Provider) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	cp := *p
	f.providers[p.ID] = &cp
	return nil
}

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	if p, ok := f.providers[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		out = append(out, *p)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) DeleteByID(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeNotifier struct {
	sent    []models.Notification
	failErr error
}

func (f *fakeNotifier) Notify(ctx context.Context, receiverID, notifType, entityID, message string) (*models.Notification, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	n := models.Notification{ReceiverID: receiverID, Type: notifType, EntityID: entityID, Message: message}
	f.sent = append(f.sent, n)
	return &n, nil
}

func (f *fakeNotifier) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return f.sent, nil
}

func (f *fakeNotifier) GetLatestUnread(ctx context.Context, userID string) ([]models.Notification, error) {
	return f.sent, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, notificationID string) error { return nil }
func (f *fakeNotifier) MarkAllRead(ctx context.Context, userID string) error      { return nil }
func (f *fakeNotifier) Clear(ctx context.Context, userID string) error            { return nil }

type fixture struct {
	svc       *DefaultBookingService
	bookings  *fakeBookingRepo
	requests  *fakeRequestRepo
	offerings *fakeOfferingRepo
	providers *fakeProviderRepo
	users     *fakeUserRepo
	notifier  *fakeNotifier
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  newFakeBookingRepo(),
		requests:  newFakeRequestRepo(),
		offerings: newFakeOfferingRepo(),
		providers: newFakeProviderRepo(),
		users:     newFakeUserRepo(),
		notifier:  &fakeNotifier{},
	}
	f.svc = &DefaultBookingService{
		Bookings:  f.bookings,
		Requests:  f.requests,
		Offerings: f.offerings,
		Providers: f.providers,
		Users:     f.users,
		NotifSvc:  f.notifier,
	}
	return f
}

func assertServiceError(t *testing.T, err error, code, message string) {
	t.Helper()
	var se *utils.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if se.Code != code {
		t.Errorf("code = %q, want %q", se.Code, code)
	}
	if se.Message != message {
		t.Errorf("message = %q, want %q", se.Message, message)
	}
}

func TestCreateRequiresUserAndType(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), CreateBookingInput{BookingType: models.BookingTypeOffer})
	assertServiceError(t, err, utils.CodeValidation, "User ID and booking type are required.")

	_, err = f.svc.Create(context.Background(), CreateBookingInput{UserID: utils.NewID()})
	assertServiceError(t, err, utils.CodeValidation, "User ID and booking type are required.")
}

func TestCreateRequiresServiceIDWithoutDraft(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), CreateBookingInput{
		UserID:      utils.NewID(),
		BookingType: models.BookingTypeRequest,
	})
	assertServiceError(t, err, utils.CodeValidation, "Service ID is required for existing requests.")
}

func TestCreateFromOfferInvertsParticipants(t *testing.T) {
	f := newFixture()
	providerUserID := utils.NewID()
	customerID := utils.NewID()
	f.users.users[customerID] = &models.User{ID: customerID, Email: "customer@example.com", UserType: models.UserTypeUser}

	offer := &models.Offering{ProviderID: providerUserID, Title: "Pipe Fixing"}
	f.offerings.Create(context.Background(), offer)

	result, err := f.svc.Create(context.Background(), CreateBookingInput{
		ServiceID:   offer.ID,
		BookingType: models.BookingTypeOffer,
		UserID:      customerID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.Booking.UserID != customerID {
		t.Errorf("booking userId = %q, want customer %q", result.Booking.UserID, customerID)
	}
	if result.Booking.ProviderID != providerUserID {
		t.Errorf("booking providerId = %q, want offering owner %q", result.Booking.ProviderID, providerUserID)
	}
	if result.Booking.Status != models.BookingStatusPending {
		t.Errorf("status = %q, want pending", result.Booking.Status)
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(f.notifier.sent))
	}
	n := f.notifier.sent[0]
	if n.ReceiverID != providerUserID {
		t.Errorf("notification receiver = %q, want provider %q", n.ReceiverID, providerUserID)
	}
	if n.EntityID != offer.ID {
		t.Errorf("notification entity = %q, want offering %q", n.EntityID, offer.ID)
	}
	if !strings.Contains(n.Message, "customer@example.com") || !strings.Contains(n.Message, "Pipe Fixing") {
		t.Errorf("unexpected notification message %q", n.Message)
	}
}

func TestCreateFromOfferMissingOffering(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), CreateBookingInput{
		ServiceID:   utils.NewID(),
		BookingType: models.BookingTypeOffer,
		UserID:      utils.NewID(),
	})
	assertServiceError(t, err, utils.CodeNotFound, "Offer not found.")
}

func TestCreateFromExistingRequestNotifiesOwner(t *testing.T) {
	f := newFixture()
	ownerID := utils.NewID()
	providerUserID := utils.NewID()
	f.providers.Create(context.Background(), &models.Provider{
		UserID: providerUserID, FirstName: "Sara", LastName: "Hamid",
	})

	req := &models.Request{UserID: ownerID, Title: "Garden Cleanup"}
	f.requests.Create(context.Background(), req)

	result, err := f.svc.Create(context.Background(), CreateBookingInput{
		ServiceID:   req.ID,
		BookingType: models.BookingTypeRequest,
		UserID:      providerUserID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.Booking.UserID != ownerID {
		t.Errorf("booking userId = %q, want request owner %q", result.Booking.UserID, ownerID)
	}
	if result.Booking.ProviderID != providerUserID {
		t.Errorf("booking providerId = %q, want caller %q", result.Booking.ProviderID, providerUserID)
	}
	if result.RequestID != req.ID {
		t.Errorf("requestId = %q, want %q", result.RequestID, req.ID)
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(f.notifier.sent))
	}
	n := f.notifier.sent[0]
	if n.ReceiverID != ownerID {
		t.Errorf("notification receiver = %q, want request owner %q", n.ReceiverID, ownerID)
	}
	if !strings.Contains(n.Message, "Sara Hamid") || !strings.Contains(n.Message, "Garden Cleanup") {
		t.Errorf("unexpected notification message %q", n.Message)
	}
}

func TestCreateWithDraftCreatesRequestInline(t *testing.T) {
	f := newFixture()
	callerID := utils.NewID()

	result, err := f.svc.Create(context.Background(), CreateBookingInput{
		BookingType: models.BookingTypeRequest,
		UserID:      callerID,
		Title:       "Move a sofa",
		Description: "Two floors, no elevator",
		Price:       150,
		Location:    "Riyadh",
		ServiceType: "Moving",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req, _ := f.requests.GetByID(context.Background(), result.RequestID)
	if req == nil {
		t.Fatal("inline request was not created")
	}
	if req.UserID != callerID {
		t.Errorf("request owner = %q, want caller %q", req.UserID, callerID)
	}
	// The inline-draft path records the caller on both sides.
	if result.Booking.UserID != callerID || result.Booking.ProviderID != callerID {
		t.Errorf("booking sides = (%q, %q), want caller on both", result.Booking.UserID, result.Booking.ProviderID)
	}
}

func TestCreateDuplicateRejected(t *testing.T) {
	f := newFixture()
	providerUserID := utils.NewID()
	customerID := utils.NewID()
	offer := &models.Offering{ProviderID: providerUserID, Title: "Painting"}
	f.offerings.Create(context.Background(), offer)

	in := CreateBookingInput{ServiceID: offer.ID, BookingType: models.BookingTypeOffer, UserID: customerID}
	if _, err := f.svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := f.svc.Create(context.Background(), in)
	assertServiceError(t, err, utils.CodeConflict, "Booking already exists.")
}

func TestConfirmRequest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ownerID := utils.NewID()
	providerUserID := utils.NewID()
	provider := &models.Provider{UserID: providerUserID, FirstName: "Ali", LastName: "Noor"}
	f.providers.Create(ctx, provider)

	req := &models.Request{UserID: ownerID, Title: "Fix AC"}
	f.requests.Create(ctx, req)

	booking := &models.Booking{ServiceID: req.ID, UserID: ownerID, ProviderID: providerUserID, BookingType: models.BookingTypeRequest}
	f.bookings.Create(ctx, booking)

	confirmed, err := f.svc.ConfirmRequest(ctx, booking.ID, provider.ID)
	if err != nil {
		t.Fatalf("ConfirmRequest: %v", err)
	}
	if confirmed.Status != models.BookingStatusAccepted {
		t.Errorf("returned status = %q, want accepted", confirmed.Status)
	}

	stored, _ := f.bookings.GetByID(ctx, booking.ID)
	if stored.Status != models.BookingStatusAccepted {
		t.Errorf("stored booking status = %q, want accepted", stored.Status)
	}
	storedReq, _ := f.requests.GetByID(ctx, req.ID)
	if storedReq.Status != models.RequestStatusAccepted {
		t.Errorf("request status = %q, want accepted", storedReq.Status)
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(f.notifier.sent))
	}
	n := f.notifier.sent[0]
	if n.ReceiverID != providerUserID {
		t.Errorf("notification receiver = %q, want provider user %q", n.ReceiverID, providerUserID)
	}
	if n.EntityID != booking.ID {
		t.Errorf("notification entity = %q, want booking %q", n.EntityID, booking.ID)
	}
	if n.Message != "Your offer has been accepted" {
		t.Errorf("message = %q", n.Message)
	}
}

func TestConfirmRequestMissingRequestStillConfirms(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	provider := &models.Provider{UserID: utils.NewID(), FirstName: "Ali", LastName: "Noor"}
	f.providers.Create(ctx, provider)

	booking := &models.Booking{ServiceID: utils.NewID(), UserID: utils.NewID(), ProviderID: provider.UserID, BookingType: models.BookingTypeRequest}
	f.bookings.Create(ctx, booking)

	confirmed, err := f.svc.ConfirmRequest(ctx, booking.ID, provider.ID)
	if err != nil {
		t.Fatalf("ConfirmRequest: %v", err)
	}
	if confirmed.Status != models.BookingStatusAccepted {
		t.Errorf("status = %q, want accepted", confirmed.Status)
	}
}

func TestConfirmRequestValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.ConfirmRequest(ctx, "not-an-id", utils.NewID())
	assertServiceError(t, err, utils.CodeValidation, "Invalid booking or provider ID format")

	_, err = f.svc.ConfirmRequest(ctx, utils.NewID(), utils.NewID())
	assertServiceError(t, err, utils.CodeNotFound, "Booking not found")
}

func TestConfirmOffering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	customerID := utils.NewID()
	offer := &models.Offering{ProviderID: utils.NewID(), Title: "Cleaning"}
	f.offerings.Create(ctx, offer)

	booking := &models.Booking{ServiceID: offer.ID, UserID: customerID, ProviderID: offer.ProviderID, BookingType: models.BookingTypeOffer}
	f.bookings.Create(ctx, booking)

	confirmed, err := f.svc.ConfirmOffering(ctx, booking.ID)
	if err != nil {
		t.Fatalf("ConfirmOffering: %v", err)
	}
	if confirmed.Status != models.BookingStatusAccepted {
		t.Errorf("status = %q, want accepted", confirmed.Status)
	}
	storedOffer, _ := f.offerings.GetByID(ctx, offer.ID)
	if storedOffer.Status != models.OfferingStatusAccepted {
		t.Errorf("offering status = %q, want accepted", storedOffer.Status)
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(f.notifier.sent))
	}
	n := f.notifier.sent[0]
	if n.ReceiverID != customerID {
		t.Errorf("notification receiver = %q, want customer %q", n.ReceiverID, customerID)
	}
	if n.EntityID != offer.ID {
		t.Errorf("notification entity = %q, want offering %q", n.EntityID, offer.ID)
	}
}

func TestConfirmOfferingMissingOffering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	booking := &models.Booking{ServiceID: utils.NewID(), UserID: utils.NewID(), BookingType: models.BookingTypeOffer}
	f.bookings.Create(ctx, booking)

	_, err := f.svc.ConfirmOffering(ctx, booking.ID)
	assertServiceError(t, err, utils.CodeNotFound, "Offering not found")
}

func TestGetByServiceIDEnrichment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ownerID := utils.NewID()
	providerUserID := utils.NewID()
	f.providers.Create(ctx, &models.Provider{UserID: providerUserID, FirstName: "Huda", LastName: "Salem"})

	req := &models.Request{UserID: ownerID, Title: "Paint the fence"}
	f.requests.Create(ctx, req)

	booking := &models.Booking{ServiceID: req.ID, UserID: ownerID, ProviderID: providerUserID, BookingType: models.BookingTypeRequest}
	f.bookings.Create(ctx, booking)

	result, err := f.svc.GetByServiceID(ctx, req.ID)
	if err != nil {
		t.Fatalf("GetByServiceID: %v", err)
	}
	if result.RequestTitle != "Paint the fence" {
		t.Errorf("requestTitle = %q", result.RequestTitle)
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("bookings = %d, want 1", len(result.Bookings))
	}
	if result.Bookings[0].Provider == nil || result.Bookings[0].Provider.UserID != providerUserID {
		t.Errorf("provider join missing or wrong: %+v", result.Bookings[0].Provider)
	}
}

func TestGetByServiceIDNoBookings(t *testing.T) {
	f := newFixture()
	_, err := f.svc.GetByServiceID(context.Background(), utils.NewID())
	assertServiceError(t, err, utils.CodeNotFound, "No bookings found")
}

func TestGetUserBookingsIncludesBothSides(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	me := utils.NewID()

	req := &models.Request{UserID: me, Title: "As customer"}
	f.requests.Create(ctx, req)
	f.bookings.Create(ctx, &models.Booking{ServiceID: req.ID, UserID: me, ProviderID: utils.NewID(), BookingType: models.BookingTypeRequest})
	f.bookings.Create(ctx, &models.Booking{ServiceID: utils.NewID(), UserID: utils.NewID(), ProviderID: me, BookingType: models.BookingTypeRequest})
	f.bookings.Create(ctx, &models.Booking{ServiceID: utils.NewID(), UserID: utils.NewID(), ProviderID: utils.NewID(), BookingType: models.BookingTypeOffer})

	out, err := f.svc.GetUserBookings(ctx, me)
	if err != nil {
		t.Fatalf("GetUserBookings: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("bookings = %d, want 2", len(out))
	}
	for _, b := range out {
		if b.ServiceID == req.ID && b.ServiceDetails == nil {
			t.Error("serviceDetails missing for existing request")
		}
		if b.ServiceID != req.ID && b.ServiceDetails != nil {
			t.Error("serviceDetails set for dangling service")
		}
	}
}

func TestGetAllCompletedResolvesProviderDirectly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	providerUserID := utils.NewID()
	f.providers.Create(ctx, &models.Provider{UserID: providerUserID, FirstName: "Omar", LastName: "Fahad"})

	req := &models.Request{UserID: utils.NewID(), Title: "Deep clean", Location: "Jeddah", Price: 300}
	f.requests.Create(ctx, req)

	f.bookings.Create(ctx, &models.Booking{
		ServiceID: req.ID, UserID: utils.NewID(), ProviderID: providerUserID,
		BookingType: models.BookingTypeRequest, Status: models.BookingStatusCompleted,
	})

	out, err := f.svc.GetAllCompleted(ctx)
	if err != nil {
		t.Fatalf("GetAllCompleted: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("completed = %d, want 1", len(out))
	}
	entry := out[0]
	if entry.Provider == nil || entry.Provider.UserID != providerUserID {
		t.Errorf("provider not resolved from booking: %+v", entry.Provider)
	}
	if entry.ServiceType != "Deep clean" {
		t.Errorf("serviceType = %q, want the service title", entry.ServiceType)
	}
	if entry.Location != "Jeddah" || entry.Price != 300 {
		t.Errorf("flattened service fields = (%q, %v)", entry.Location, entry.Price)
	}
}

func TestDeleteBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	booking := &models.Booking{ServiceID: utils.NewID(), UserID: utils.NewID(), BookingType: models.BookingTypeOffer}
	f.bookings.Create(ctx, booking)

	if err := f.svc.Delete(ctx, booking.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err := f.svc.Delete(ctx, booking.ID)
	assertServiceError(t, err, utils.CodeNotFound, "Booking not found")
}
