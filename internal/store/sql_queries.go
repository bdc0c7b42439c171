package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-finance-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns     = []string{"id", "username", "COALESCE(email, '')", "password_hash", "created_at"}
	sessionColumns  = []string{"id", "user_id", "created_at", "expires_at"}
	incomeColumns   = []string{"id", "user_id", "amount", "month", "year", "is_locked", "created_at"}
	categoryColumns = []string{"id", "user_id", "name", "created_at"}
	expenseColumns  = []string{
		"e.id", "e.user_id", "e.category_id", "c.name", "e.amount", "e.date", "e.description", "e.created_at",
	}
)

// sqlQueries builds every statement the repositories run. One query set
// serves both dialects; only the placeholder format differs.
type sqlQueries struct {
	sb sq.StatementBuilderType
}

func newSQLQueries(placeholder sq.PlaceholderFormat) sqlQueries {
	return sqlQueries{sb: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func (q sqlQueries) createUser(user models.User) (string, []any, error) {
	return toSQL(q.sb.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id"))
}

func (q sqlQueries) findUserBy(column string, value any) (string, []any, error) {
	return toSQL(q.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}))
}

func (q sqlQueries) backfillMissingEmails(suffix string) (string, []any, error) {
	return toSQL(q.sb.
		Update(models.User{}.TableName()).
		Set("email", sq.Expr("username || ?", suffix)).
		Where(sq.Or{sq.Eq{"email": nil}, sq.Eq{"email": ""}}))
}

// ── sessions ──────────────────────────────────────────────────────────────────

func (q sqlQueries) createSession(session models.Session) (string, []any, error) {
	return toSQL(q.sb.
		Insert(session.TableName()).
		Columns(sessionColumns...).
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt))
}

func (q sqlQueries) findSession(sessionID string) (string, []any, error) {
	return toSQL(q.sb.
		Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": sessionID}))
}

func (q sqlQueries) deleteSession(sessionID string) (string, []any, error) {
	return toSQL(q.sb.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"id": sessionID}))
}

// ── incomes ───────────────────────────────────────────────────────────────────

func (q sqlQueries) createIncome(income models.Income) (string, []any, error) {
	return toSQL(q.sb.
		Insert(income.TableName()).
		Columns("user_id", "amount", "month", "year", "is_locked", "created_at").
		Values(income.UserID, income.Amount, income.Month, income.Year, false, income.CreatedAt).
		Suffix("RETURNING id"))
}

func (q sqlQueries) getIncome(userID, incomeID int64) (string, []any, error) {
	return toSQL(q.sb.
		Select(incomeColumns...).
		From(models.Income{}.TableName()).
		Where(sq.Eq{"id": incomeID}).
		Where(sq.Eq{"user_id": userID}))
}

func (q sqlQueries) listIncomes(userID int64) (string, []any, error) {
	return toSQL(q.sb.
		Select(incomeColumns...).
		From(models.Income{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id"))
}

// updateIncome only matches unlocked rows, so a locked income can never be
// changed regardless of what the caller read before.
func (q sqlQueries) updateIncome(income models.Income) (string, []any, error) {
	return toSQL(q.sb.
		Update(income.TableName()).
		Set("amount", income.Amount).
		Set("month", income.Month).
		Set("year", income.Year).
		Where(sq.Eq{"id": income.ID}).
		Where(sq.Eq{"user_id": income.UserID}).
		Where(sq.Eq{"is_locked": false}))
}

func (q sqlQueries) lockIncome(userID, incomeID int64) (string, []any, error) {
	return toSQL(q.sb.
		Update(models.Income{}.TableName()).
		Set("is_locked", true).
		Where(sq.Eq{"id": incomeID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_locked": false}))
}

// ── categories ────────────────────────────────────────────────────────────────

func (q sqlQueries) createCategory(category models.Category) (string, []any, error) {
	return toSQL(q.sb.
		Insert(category.TableName()).
		Columns("user_id", "name", "created_at").
		Values(category.UserID, category.Name, category.CreatedAt).
		Suffix("RETURNING id"))
}

func (q sqlQueries) getCategory(userID, categoryID int64) (string, []any, error) {
	return toSQL(q.sb.
		Select(categoryColumns...).
		From(models.Category{}.TableName()).
		Where(sq.Eq{"id": categoryID}).
		Where(sq.Eq{"user_id": userID}))
}

func (q sqlQueries) listCategories(userID int64) (string, []any, error) {
	return toSQL(q.sb.
		Select(categoryColumns...).
		From(models.Category{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id"))
}

// ── expenses ──────────────────────────────────────────────────────────────────

func (q sqlQueries) createExpense(expense models.Expense) (string, []any, error) {
	return toSQL(q.sb.
		Insert(expense.TableName()).
		Columns("user_id", "category_id", "amount", "date", "description", "created_at").
		Values(expense.UserID, expense.CategoryID, expense.Amount, expense.Date, expense.Description, expense.CreatedAt).
		Suffix("RETURNING id"))
}

func (q sqlQueries) listExpenses(userID int64) (string, []any, error) {
	return toSQL(q.sb.
		Select(expenseColumns...).
		From(models.Expense{}.TableName() + " e").
		Join(models.Category{}.TableName() + " c ON c.id = e.category_id").
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy("e.created_at", "e.id"))
}

func (q sqlQueries) deleteExpense(userID, expenseID int64) (string, []any, error) {
	return toSQL(q.sb.
		Delete(models.Expense{}.TableName()).
		Where(sq.Eq{"id": expenseID}).
		Where(sq.Eq{"user_id": userID}))
}

// now is the creation timestamp stored with new rows. Microsecond precision
// survives a PostgreSQL round trip unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
