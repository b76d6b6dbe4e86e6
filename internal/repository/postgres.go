package repository

import (
	"bid-engine/internal/biddingerrors"
	model "bid-engine/internal/models"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Postgres error codes the store translates into domain errors
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// Migrate applies the embedded schema migrations
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// PostgresRepo persists listings, bids and payments in PostgreSQL
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo creates a PostgreSQL-backed repository
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const listingColumns = `id, owner_id, owner_email, title, status, minimum_bid, retail_price,
	max_inventory, blackout_dates, auto_accept_above_minimum`

const bidColumns = `id, listing_id, bidder_id, bidder_email, check_in, check_out,
	bid_per_night, total_nights, total_amount, status, rejection_reason,
	platform_commission, payable_to_hotel, payout_method, is_paid_to_hotel,
	paid_to_hotel_at, payout_notes, created_at, updated_at`

const paymentColumns = `id, bid_id, amount, currency, status, intent_id, client_secret,
	authorized_at, captured_at, cancelled_at, failed_at, failure_reason, created_at, updated_at`

// AddListing inserts or replaces a listing. Listings are owned by an external
// catalogue; this is used for seeding and tests.
func (r *PostgresRepo) AddListing(ctx context.Context, l model.Listing) error {
	blackout := make([]string, 0, len(l.BlackoutDates))
	for _, d := range l.BlackoutDates {
		blackout = append(blackout, d.Format(model.DateLayout))
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO listings (`+listingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::date[], $10)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id, owner_email = EXCLUDED.owner_email,
			title = EXCLUDED.title, status = EXCLUDED.status,
			minimum_bid = EXCLUDED.minimum_bid, retail_price = EXCLUDED.retail_price,
			max_inventory = EXCLUDED.max_inventory, blackout_dates = EXCLUDED.blackout_dates,
			auto_accept_above_minimum = EXCLUDED.auto_accept_above_minimum,
			updated_at = NOW()`,
		l.ListingID, l.OwnerID, l.OwnerEmail, l.Title, string(l.Status),
		l.MinimumBid, l.RetailPrice, l.MaxInventory, pq.StringArray(blackout),
		l.AutoAcceptAboveMinimum,
	)
	return err
}

func (r *PostgresRepo) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, listingID)

	var (
		l        model.Listing
		status   string
		blackout pq.StringArray
	)
	err := row.Scan(&l.ListingID, &l.OwnerID, &l.OwnerEmail, &l.Title, &status,
		&l.MinimumBid, &l.RetailPrice, &l.MaxInventory, &blackout, &l.AutoAcceptAboveMinimum)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biddingerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}

	l.Status = model.ListingStatus(status)
	for _, s := range blackout {
		if len(s) > len(model.DateLayout) {
			s = s[:len(model.DateLayout)]
		}
		d, err := model.ParseDay(s)
		if err != nil {
			return model.Listing{}, fmt.Errorf("get listing %s: blackout date %q: %w", listingID, s, err)
		}
		l.BlackoutDates = append(l.BlackoutDates, d)
	}
	return l, nil
}

// CreateBid inserts a bid unless the bidder already holds an overlapping PENDING bid on
// the listing. Concurrent submissions by one bidder on one listing queue on an advisory lock.
func (r *PostgresRepo) CreateBid(ctx context.Context, b model.Bid) error {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1 || ':' || $2))`, b.ListingID, b.BidderID); err != nil {
			return err
		}

		var dup bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM bids
				WHERE listing_id = $1 AND bidder_id = $2 AND status = 'PENDING'
				  AND $3::date <= check_out AND $4::date >= check_in
			)`,
			b.ListingID, b.BidderID, b.CheckInDate.Format(model.DateLayout), b.CheckOutDate.Format(model.DateLayout),
		).Scan(&dup)
		if err != nil {
			return err
		}
		if dup {
			return fmt.Errorf("create bid on listing %s by %s: %w", b.ListingID, b.BidderID, biddingerrors.ErrDuplicatePendingBid)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO bids (
				id, listing_id, bidder_id, bidder_email, check_in, check_out,
				bid_per_night, total_nights, total_amount, status, rejection_reason,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, $10, $11, $12, $13)`,
			b.BidID, b.ListingID, b.BidderID, b.BidderEmail,
			b.CheckInDate.Format(model.DateLayout), b.CheckOutDate.Format(model.DateLayout),
			b.BidPerNight, b.TotalNights, b.TotalAmount, string(b.Status),
			nullString(b.RejectionReason), b.CreatedAt, b.UpdatedAt,
		)
		return err
	})
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("create bid for listing %s: %w", b.ListingID, biddingerrors.ErrListingNotFound)
		case pqUniqueViolation:
			return fmt.Errorf("create bid %s: %w", b.BidID, biddingerrors.ErrConflict)
		}
	}
	return err
}

func (r *PostgresRepo) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	b, err := scanBid(r.db.QueryRowContext(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, bidID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return b, err
}

func (r *PostgresRepo) ListBidsByListing(ctx context.Context, listingID string) ([]model.Bid, error) {
	return r.queryBids(ctx, `SELECT `+bidColumns+` FROM bids WHERE listing_id = $1 ORDER BY created_at`, listingID)
}

func (r *PostgresRepo) ListBidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	return r.queryBids(ctx, `SELECT `+bidColumns+` FROM bids WHERE bidder_id = $1 ORDER BY created_at`, bidderID)
}

func (r *PostgresRepo) queryBids(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

func (r *PostgresRepo) CountClaimedBidsOnDay(ctx context.Context, listingID string, day time.Time, excludeBidID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bids b
		JOIN payments p ON p.bid_id = b.id
		WHERE b.listing_id = $1 AND b.status = 'ACCEPTED'
		  AND p.status IN ('PENDING', 'REQUIRES_ACTION', 'AUTHORIZED', 'CAPTURED')
		  AND b.check_in <= $2::date AND b.check_out > $2::date
		  AND b.id <> $3`,
		listingID, day.Format(model.DateLayout), excludeBidID,
	).Scan(&count)
	return count, err
}

func (r *PostgresRepo) CompareAndSetBidStatus(ctx context.Context, bidID string, from, to model.BidStatus, reason string) (model.Bid, error) {
	b, err := scanBid(r.db.QueryRowContext(ctx, `
		UPDATE bids SET status = $1, rejection_reason = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING `+bidColumns,
		string(to), nullString(reason), bidID, string(from),
	))
	if errors.Is(err, sql.ErrNoRows) {
		current, getErr := r.GetBid(ctx, bidID)
		if getErr != nil {
			return model.Bid{}, getErr
		}
		return current, fmt.Errorf("set status of bid %s from %s (is %s): %w", bidID, from, current.Status, biddingerrors.ErrStatusChanged)
	}
	return b, err
}

func (r *PostgresRepo) StampBidCommission(ctx context.Context, bidID string, commission, payable decimal.Decimal) (bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		UPDATE bids SET platform_commission = $1, payable_to_hotel = $2, updated_at = NOW()
		WHERE id = $3 AND platform_commission IS NULL
		RETURNING id`, commission, payable, bidID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bids WHERE id = $1)`, bidID).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("stamp commission of bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return false, nil
}

func (r *PostgresRepo) UpdatePayout(ctx context.Context, bidID string, upd model.PayoutUpdate, now time.Time) (model.Bid, model.Bid, error) {
	var before, after model.Bid
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		before, err = scanBid(tx.QueryRowContext(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1 FOR UPDATE`, bidID))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update payout of bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
		}
		if err != nil {
			return err
		}
		if before.Status != model.BidAccepted {
			after = before
			return fmt.Errorf("update payout of bid %s: %w", bidID, biddingerrors.ErrBidNotAccepted)
		}

		after = applyPayout(before, upd, now)
		_, err = tx.ExecContext(ctx, `
			UPDATE bids SET payout_method = $1, is_paid_to_hotel = $2, paid_to_hotel_at = $3,
				payout_notes = $4, updated_at = $5
			WHERE id = $6`,
			nullString(after.PayoutMethod), after.IsPaidToHotel, nullTime(after.PaidToHotelAt),
			nullString(after.PayoutNotes), after.UpdatedAt, bidID,
		)
		return err
	})
	return before, after, err
}

func (r *PostgresRepo) GetPayment(ctx context.Context, paymentID string) (model.Payment, error) {
	return r.getPaymentBy(ctx, "id", paymentID)
}

func (r *PostgresRepo) GetPaymentByBid(ctx context.Context, bidID string) (model.Payment, error) {
	return r.getPaymentBy(ctx, "bid_id", bidID)
}

func (r *PostgresRepo) GetPaymentByIntent(ctx context.Context, intentID string) (model.Payment, error) {
	return r.getPaymentBy(ctx, "intent_id", intentID)
}

// getPaymentBy looks a payment up by one of its unique columns; column is never user input
func (r *PostgresRepo) getPaymentBy(ctx context.Context, column, value string) (model.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE `+column+` = $1`, value))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Payment{}, fmt.Errorf("get payment by %s %s: %w", column, value, biddingerrors.ErrPaymentNotFound)
	}
	return p, err
}

// UpsertPaymentIntent creates the payment for p.BidID, or points it at p's gateway intent
// when the stored payment failed, was cancelled or expired. Any other stored payment is
// returned unchanged.
func (r *PostgresRepo) UpsertPaymentIntent(ctx context.Context, p model.Payment) (model.Payment, error) {
	out, err := scanPayment(r.db.QueryRowContext(ctx, `
		INSERT INTO payments (id, bid_id, amount, currency, status, intent_id, client_secret, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'PENDING', $5, $6, $7, $7)
		ON CONFLICT (bid_id) DO UPDATE SET
			amount = EXCLUDED.amount, currency = EXCLUDED.currency, status = 'PENDING',
			intent_id = EXCLUDED.intent_id, client_secret = EXCLUDED.client_secret,
			failure_reason = NULL, failed_at = NULL, cancelled_at = NULL,
			updated_at = EXCLUDED.updated_at
		WHERE payments.status IN ('FAILED', 'CANCELLED', 'EXPIRED')
		RETURNING `+paymentColumns,
		p.PaymentID, p.BidID, p.Amount, p.Currency, p.IntentID, p.ClientSecret, p.UpdatedAt,
	))
	if errors.Is(err, sql.ErrNoRows) {
		// the stored payment is still in flight or already settled
		return r.GetPaymentByBid(ctx, p.BidID)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return model.Payment{}, fmt.Errorf("upsert payment for bid %s: %w", p.BidID, biddingerrors.ErrBidNotFound)
	}
	return out, err
}

func (r *PostgresRepo) TransitionPayment(ctx context.Context, paymentID string, t model.PaymentTransition) (model.PaymentStatus, model.Payment, error) {
	var (
		prev model.PaymentStatus
		out  model.Payment
	)
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		p, err := scanPayment(tx.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, paymentID))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transition payment %s: %w", paymentID, biddingerrors.ErrPaymentNotFound)
		}
		if err != nil {
			return err
		}
		prev, out = p.Status, p

		next, changed := applyTransition(p, t)
		if !changed {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE payments SET status = $1, authorized_at = $2, captured_at = $3,
				cancelled_at = $4, failed_at = $5, failure_reason = $6, updated_at = $7
			WHERE id = $8`,
			string(next.Status), nullTime(next.AuthorizedAt), nullTime(next.CapturedAt),
			nullTime(next.CancelledAt), nullTime(next.FailedAt), nullString(next.FailureReason),
			next.UpdatedAt, paymentID,
		)
		if err != nil {
			return err
		}
		out = next
		return nil
	})
	return prev, out, err
}

func (r *PostgresRepo) RecordWebhookEvent(ctx context.Context, eventID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO webhook_events (event_id) VALUES ($1) ON CONFLICT DO NOTHING`, eventID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepo) ForgetWebhookEvent(ctx context.Context, eventID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM webhook_events WHERE event_id = $1`, eventID)
	return err
}

func (r *PostgresRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBid(s scanner) (model.Bid, error) {
	var (
		b               model.Bid
		status          string
		rejectionReason sql.NullString
		commission      decimal.NullDecimal
		payable         decimal.NullDecimal
		payoutMethod    sql.NullString
		paidAt          sql.NullTime
		payoutNotes     sql.NullString
	)
	err := s.Scan(
		&b.BidID, &b.ListingID, &b.BidderID, &b.BidderEmail, &b.CheckInDate, &b.CheckOutDate,
		&b.BidPerNight, &b.TotalNights, &b.TotalAmount, &status, &rejectionReason,
		&commission, &payable, &payoutMethod, &b.IsPaidToHotel,
		&paidAt, &payoutNotes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return model.Bid{}, err
	}

	b.CheckInDate = model.Day(b.CheckInDate)
	b.CheckOutDate = model.Day(b.CheckOutDate)
	b.Status = model.BidStatus(status)
	b.RejectionReason = rejectionReason.String
	b.PayoutMethod = payoutMethod.String
	b.PayoutNotes = payoutNotes.String
	if commission.Valid {
		b.PlatformCommission = &commission.Decimal
	}
	if payable.Valid {
		b.PayableToHotel = &payable.Decimal
	}
	if paidAt.Valid {
		b.PaidToHotelAt = &paidAt.Time
	}
	return b, nil
}

func scanPayment(s scanner) (model.Payment, error) {
	var (
		p             model.Payment
		status        string
		authorizedAt  sql.NullTime
		capturedAt    sql.NullTime
		cancelledAt   sql.NullTime
		failedAt      sql.NullTime
		failureReason sql.NullString
	)
	err := s.Scan(
		&p.PaymentID, &p.BidID, &p.Amount, &p.Currency, &status, &p.IntentID, &p.ClientSecret,
		&authorizedAt, &capturedAt, &cancelledAt, &failedAt, &failureReason, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Payment{}, err
	}

	p.Status = model.PaymentStatus(status)
	p.FailureReason = failureReason.String
	p.AuthorizedAt = timePtr(authorizedAt)
	p.CapturedAt = timePtr(capturedAt)
	p.CancelledAt = timePtr(cancelledAt)
	p.FailedAt = timePtr(failedAt)
	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

var (
	_ BookingDB = (*MemoryRepo)(nil)
	_ BookingDB = (*PostgresRepo)(nil)
)
