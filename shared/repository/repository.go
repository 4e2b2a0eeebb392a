package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"hotelhills/infras/otel"
	"hotelhills/infras/postgres"
	"hotelhills/shared/constant"
	"hotelhills/shared/dto"
	"hotelhills/shared/failure"
	"hotelhills/shared/logger"

	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
	errRequiredFields = errors.New("required fields to update")
)

const (
	operationInsert = "insert"
	operationUpdate = "update"
	operationDelete = "delete"
)

type column struct {
	name  string
	table string
	alias string
}

// Repository runs the generic CRUD statements for one table. T may embed the
// table model and add joined columns tagged with `table` and `column`; its
// GetJoinQuery method then supplies the JOIN clause for reads.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	sortable      map[string]string
	join          string
	InsertColumns []string
}

type joiner interface {
	GetJoinQuery() string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		sortable:      getSortableColumns(columns),
		join:          join,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) span(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

// fail records err on the scope and the log before it is returned.
func fail(scope otel.Scope, err error) {
	logger.ErrorWithStack(err)
	scope.TraceError(err)
}

// read prepares query against the read pool and scans into dest, a pointer to
// either a single row or a slice.
func (repo *Repository[T]) read(ctx context.Context, scope otel.Scope, query string, args map[string]any, dest any, many bool) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		fail(scope, err)

		return fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if many {
		err = stmt.SelectContext(ctx, dest, args)
	} else {
		err = stmt.GetContext(ctx, dest, args)
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		fail(scope, err)

		return fmt.Errorf("failed to read data (%s): %w", repo.entity, err)
	}

	return nil
}

// write runs a named statement against the write pool.
func (repo *Repository[T]) write(ctx context.Context, scope otel.Scope, operation, query string, arg any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, arg); err != nil {
		fail(scope, err)

		return repo.translateError(err, operation)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.span(ctx, "Insert")
	defer scope.End()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))

	return repo.write(ctx, scope, operationInsert, query, model)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.span(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false
	err := repo.read(ctx, scope, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where), args, &exist, false)

	return exist, err
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.span(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.getSelectQuery(columns...), repo.table, repo.join, where)

	var model T
	if err := repo.read(ctx, scope, query, args, &model, false); err != nil {
		var zero T

		return zero, err
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.span(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	pagination := ""
	if params.Limit > 0 {
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"

		if params.Page > 0 {
			args["offset"] = params.Offset()
			pagination += " OFFSET :offset"
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s",
		repo.getSelectQuery(columns...), repo.table, repo.join, where, repo.orderBy(params), pagination)

	var models []T
	err := repo.read(ctx, scope, query, args, &models, true)

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.span(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	var count int
	err := repo.read(ctx, scope, query, args, &count, false)

	return count, err
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "Delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.write(ctx, scope, operationDelete, fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

// Update sets the columns in mod, in a stable order, on every row matching filter.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "Update")
	defer scope.End()

	if len(mod) == 0 {
		return errRequiredFields
	}

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, mod)

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	return repo.write(ctx, scope, operationUpdate, query, args)
}

// getSelectQuery lists the columns to read, restricted to names when any are given.
func (repo *Repository[T]) getSelectQuery(names ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(names) > 0 && !slices.Contains(names, col.name) {
			continue
		}

		switch {
		case col.table == "":
			selected = append(selected, col.name)
		case col.alias != "":
			selected = append(selected, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			selected = append(selected, fmt.Sprintf("%s.%s", col.table, col.name))
		}
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

// getColumns walks db tags, descending into embedded structs. Only columns of
// the repository's own table are inserted.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}

// orderBy only accepts known columns, qualified with their table, and falls back to newest first.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	dir := dto.SortDirAsc
	if strings.ToUpper(params.SortDir) == dto.SortDirDesc {
		dir = dto.SortDirDesc
	}

	if expr, ok := repo.sortable[params.SortBy]; ok {
		return fmt.Sprintf("ORDER BY %s %s, %s.%s", expr, dir, repo.table, repo.primaryColumn)
	}

	if expr, ok := repo.sortable[constant.DefaultValueSortBy]; ok {
		return fmt.Sprintf("ORDER BY %s %s, %s.%s", expr, constant.DefaultValueSortDir, repo.table, repo.primaryColumn)
	}

	return fmt.Sprintf("ORDER BY %s.%s", repo.table, repo.primaryColumn)
}

// translateError maps constraint violations onto request failures.
func (repo *Repository[T]) translateError(err error, operation string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict(fmt.Sprintf("%s already exists", repo.entity)) //nolint:wrapcheck
		case constant.PqErrorCodeFkViolation:
			if operation == operationDelete {
				return failure.StillReferenced
			}

			return failure.BadRequestFromString(fmt.Sprintf("%s references a record that does not exist", repo.entity)) //nolint:wrapcheck
		case constant.PqErrorCodeNumericOutOfRange:
			return failure.BadRequestFromString(fmt.Sprintf("%s has an amount out of range", repo.entity)) //nolint:wrapcheck
		}
	}

	return fmt.Errorf("failed to %s data (%s): %w", operation, repo.entity, err)
}

func getSortableColumns(columns []column) map[string]string {
	sortable := make(map[string]string, len(columns))

	for _, col := range columns {
		key := col.name
		if col.alias != "" {
			key = col.alias
		}

		if _, exists := sortable[key]; !exists {
			sortable[key] = fmt.Sprintf("%s.%s", col.table, col.name)
		}
	}

	return sortable
}
