package repomanager

import (
	"context"
	"database/sql"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/attendances"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/classes"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/payments"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/receipts"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/students"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Students(db dbx.DBTX) students.Repository
	Classes(db dbx.DBTX) classes.Repository
	Payments(db dbx.DBTX) payments.Repository
	Attendances(db dbx.DBTX) attendances.Repository
	Receipts(db dbx.DBTX) receipts.Repository
}
