package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
)

var (
	// ErrDuplicate is returned when a unique index rejects the write.
	ErrDuplicate = errors.New("duplicate key")
	// ErrEmptyFilter guards DeleteWhere against deleting every record.
	ErrEmptyFilter = errors.New("delete filter has no condition")
)

// ServiceRepository is the only gateway to stored service requests.
// Lookups return nil, nil when nothing matches. Conditional writes report
// whether a row matched instead of failing.
type ServiceRepository interface {
	Create(ctx context.Context, data *model.ServiceEntity) (*model.ServiceEntity, error)
	GetByID(ctx context.Context, id string) (*model.ServiceEntity, error)
	GetLatestByContact(ctx context.Context, filter *model.ContactFilter) (*model.ServiceEntity, error)
	GetByInquiryCodeHash(ctx context.Context, codeHash string) (*model.ServiceEntity, error)
	SetOTP(ctx context.Context, id, codeHash string, channel constant.Channel, expiresAt, now time.Time) (bool, error)
	ClearOTP(ctx context.Context, id, codeHash string, now time.Time) (bool, error)
	ConsumeOTP(ctx context.Context, id, codeHash string, channel constant.Channel, now time.Time) (bool, error)
	Update(ctx context.Context, id string, upd *model.ServiceUpdate) (bool, error)
	SetInquiryCode(ctx context.Context, id, codeHash string, now time.Time) (bool, error)
	ClearInquiryCode(ctx context.Context, id, codeHash string, now time.Time) (bool, error)
	FindByStatus(ctx context.Context, status constant.ServiceStatus, page, limit int) ([]model.ServiceEntity, int64, error)
	DeleteWhere(ctx context.Context, filter model.DeleteFilter) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewServiceRepository(conn *sqlx.DB) ServiceRepository {
	return &SQL{conn: conn}
}

const (
	serviceColumns = `id, email, phone_number, isd, email_verified, phone_verified,
otp_code_hash, otp_code_expires_at, otp_channel,
address_line_one, address_line_two, country, city, area, street, building_num, flat_num,
type, full_name, user_note, period_date, period_full_time,
admin_note, admin_internal_note, admin_message, message,
service_code_hash, locale, status, created_at, updated_at`

	insertServiceQuery = `INSERT INTO services (` + serviceColumns + `) VALUES (
:id, :email, :phone_number, :isd, :email_verified, :phone_verified,
:otp_code_hash, :otp_code_expires_at, :otp_channel,
:address_line_one, :address_line_two, :country, :city, :area, :street, :building_num, :flat_num,
:type, :full_name, :user_note, :period_date, :period_full_time,
:admin_note, :admin_internal_note, :admin_message, :message,
:service_code_hash, :locale, :status, :created_at, :updated_at)`

	getServiceBase = `SELECT ` + serviceColumns + ` FROM services`

	setOTPQuery = `UPDATE services SET otp_code_hash = ?, otp_code_expires_at = ?, otp_channel = ?, updated_at = ? WHERE id = ?`

	clearOTPQuery = `UPDATE services SET otp_code_hash = NULL, otp_code_expires_at = NULL, otp_channel = NULL, updated_at = ?
WHERE id = ? AND otp_code_hash = ?`

	setInquiryCodeQuery = `UPDATE services SET service_code_hash = ?, updated_at = ? WHERE id = ? AND service_code_hash IS NULL`

	clearInquiryCodeQuery = `UPDATE services SET service_code_hash = NULL, updated_at = ? WHERE id = ? AND service_code_hash = ?`

	countByStatusQuery = `SELECT COUNT(*) FROM services WHERE status = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ServiceEntity) (*model.ServiceEntity, error) {
	if _, err := s.conn.NamedExecContext(ctx, insertServiceQuery, data); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.ServiceEntity, error) {
	return s.getOne(ctx, getServiceBase+" WHERE id = ?", id)
}

func (s *SQL) GetLatestByContact(ctx context.Context, filter *model.ContactFilter) (*model.ServiceEntity, error) {
	query := getServiceBase + " WHERE true"
	args := make([]any, 0, 2)

	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.PhoneNumber != "" {
		query += " AND phone_number = ?"
		args = append(args, filter.PhoneNumber)
	}
	if len(args) == 0 {
		return nil, nil
	}

	return s.getOne(ctx, query+" ORDER BY created_at DESC LIMIT 1", args...)
}

func (s *SQL) GetByInquiryCodeHash(ctx context.Context, codeHash string) (*model.ServiceEntity, error) {
	return s.getOne(ctx, getServiceBase+" WHERE service_code_hash = ?", codeHash)
}

func (s *SQL) getOne(ctx context.Context, query string, args ...any) (*model.ServiceEntity, error) {
	var entity model.ServiceEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) SetOTP(ctx context.Context, id, codeHash string, channel constant.Channel, expiresAt, now time.Time) (bool, error) {
	return s.execAffected(ctx, setOTPQuery, codeHash, expiresAt, channel, now, id)
}

func (s *SQL) ClearOTP(ctx context.Context, id, codeHash string, now time.Time) (bool, error) {
	return s.execAffected(ctx, clearOTPQuery, now, id, codeHash)
}

// ConsumeOTP flips the channel's verified flag and clears the OTP in one
// statement, only while the stored digest, channel and expiry still match.
func (s *SQL) ConsumeOTP(ctx context.Context, id, codeHash string, channel constant.Channel, now time.Time) (bool, error) {
	column := "email_verified"
	if channel == constant.ChannelPhone {
		column = "phone_verified"
	}

	query := `UPDATE services SET ` + column + ` = ?, otp_code_hash = NULL, otp_code_expires_at = NULL, otp_channel = NULL, updated_at = ?
WHERE id = ? AND otp_code_hash = ? AND otp_channel = ? AND otp_code_expires_at > ?`

	return s.execAffected(ctx, query, true, now, id, codeHash, channel, now)
}

func (s *SQL) Update(ctx context.Context, id string, upd *model.ServiceUpdate) (bool, error) {
	cols := upd.Columns()
	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+3)
	for _, c := range cols {
		sets = append(sets, c.Column+" = ?")
		args = append(args, c.Value)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, upd.UpdatedAt)

	query := "UPDATE services SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)
	if upd.WhereStatus != nil {
		query += " AND status = ?"
		args = append(args, *upd.WhereStatus)
	}

	return s.execAffected(ctx, query, args...)
}

func (s *SQL) SetInquiryCode(ctx context.Context, id, codeHash string, now time.Time) (bool, error) {
	ok, err := s.execAffected(ctx, setInquiryCodeQuery, codeHash, now, id)
	if err != nil && isDuplicate(err) {
		return false, ErrDuplicate
	}
	return ok, err
}

func (s *SQL) ClearInquiryCode(ctx context.Context, id, codeHash string, now time.Time) (bool, error) {
	return s.execAffected(ctx, clearInquiryCodeQuery, now, id, codeHash)
}

func (s *SQL) FindByStatus(ctx context.Context, status constant.ServiceStatus, page, limit int) ([]model.ServiceEntity, int64, error) {
	offset := (page - 1) * limit

	query := getServiceBase + " WHERE status = ? ORDER BY created_at DESC, id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ServiceEntity, 0)
	for rows.Next() {
		var it model.ServiceEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countByStatusQuery, status); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) DeleteWhere(ctx context.Context, filter model.DeleteFilter) (int64, error) {
	if filter.Empty() {
		return 0, ErrEmptyFilter
	}

	query := "DELETE FROM services WHERE true"
	args := make([]any, 0, 6)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if len(filter.Statuses) > 0 {
		query += " AND status IN (?)"
		args = append(args, filter.Statuses)
	}
	if filter.UpdatedBefore != nil {
		query += " AND updated_at < ?"
		args = append(args, *filter.UpdatedBefore)
	}
	if filter.CreatedBefore != nil {
		query += " AND created_at < ?"
		args = append(args, *filter.CreatedBefore)
	}
	if filter.UnverifiedOnly {
		query += " AND email_verified = ? AND phone_verified = ?"
		args = append(args, false, false)
	}

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return 0, err
	}

	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) execAffected(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	// sqlite reports unique violations only through the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
