// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-service-template/models"
)

const (
	examplesTable = "examples"
	usersTable    = "users"
)

// exampleColumns is the scan order used by scanExample.
var exampleColumns = []string{
	"id",
	"name",
	"description",
	"is_active",
	"created_at",
	"updated_at",
}

var userColumns = []string{
	"user_id",
	"login",
	"password_hash",
	"created_at",
}

// newest first; id breaks ties between rows created in the same instant
var exampleOrdering = []string{"created_at DESC", "id DESC"}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertExampleQuery(b sq.StatementBuilderType, example models.Example) (string, []any, error) {
	return b.Insert(examplesTable).
		Columns("name", "description", "is_active", "created_at", "updated_at").
		Values(example.Name, example.Description, example.IsActive, example.CreatedAt, example.UpdatedAt).
		Suffix(returning(exampleColumns)).
		ToSql()
}

func buildGetExampleQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(exampleColumns...).
		From(examplesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListExamplesQuery(b sq.StatementBuilderType, limit, offset uint64) (string, []any, error) {
	query := b.Select(exampleColumns...).
		From(examplesTable).
		OrderBy(exampleOrdering...)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query.ToSql()
}

func buildCountExamplesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(examplesTable).
		ToSql()
}

func buildUpdateExampleQuery(b sq.StatementBuilderType, example models.Example) (string, []any, error) {
	return b.Update(examplesTable).
		Set("name", example.Name).
		Set("description", example.Description).
		Set("is_active", example.IsActive).
		Set("updated_at", example.UpdatedAt).
		Where(sq.Eq{"id": example.ID}).
		Suffix(returning(exampleColumns)).
		ToSql()
}

func buildDeleteExampleQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(examplesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSearchExamplesQuery matches filter.Query case-insensitively against
// name and description. Zero-valued filter fields add no condition.
func buildSearchExamplesQuery(b sq.StatementBuilderType, filter models.ExampleFilter) (string, []any, error) {
	query := b.Select(exampleColumns...).
		From(examplesTable).
		OrderBy(exampleOrdering...)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		query = query.Where(sq.Or{
			sq.Expr("LOWER(name) LIKE ? ESCAPE '\\'", pattern),
			sq.Expr("LOWER(description) LIKE ? ESCAPE '\\'", pattern),
		})
	}
	if !filter.CreatedSince.IsZero() {
		query = query.Where(sq.GtOrEq{"created_at": filter.CreatedSince})
	}
	if !filter.UpdatedSince.IsZero() {
		query = query.Where(sq.GtOrEq{"updated_at": filter.UpdatedSince})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
