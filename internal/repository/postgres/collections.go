package postgres

import (
	"context"
	"fmt"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/normalize"
)

// Watched collection names. Table identifiers cannot be bound as query
// parameters, so reads go through this fixed set only.
const (
	TableModels                = "models"
	TableNewsItems             = "news_items"
	TableTestimonials          = "testimonials"
	TableArticles              = "articles"
	TableArticleComments       = "article_comments"
	TableCastingApplications   = "casting_applications"
	TableMonthlyPayments       = "monthly_payments"
	TableAbsences              = "absences"
	TableForumThreads          = "forum_threads"
	TableForumReplies          = "forum_replies"
	TableSiteConfig            = "site_config"
	TableAgencyInfo            = "agency_info"
	TableAgencyServices        = "agency_services"
	TableAgencyTimeline        = "agency_timeline"
	TableAgencyPartners        = "agency_partners"
	TableAgencyAchievements    = "agency_achievements"
	TableSocialLinks           = "social_links"
	TableNavLinks              = "nav_links"
	TablePagesContent          = "pages_content"
	TableSiteImages            = "site_images"
	TableJuryMembers           = "jury_members"
	TableRegistrationStaff     = "registration_staff"
	TableFashionDayReservation = "fashion_day_reservations"
	TableBookingRequests       = "booking_requests"
	TableContactMessages       = "contact_messages"
	TableRecoveryRequests      = "recovery_requests"
	TableJuryScores            = "jury_scores"
	TableModelDistinctions     = "model_distinctions"
	TableProfiles              = "profiles"
	TableUserRoles             = "user_roles"
)

var watchedTables = map[string]bool{
	TableModels:                true,
	TableNewsItems:             true,
	TableTestimonials:          true,
	TableArticles:              true,
	TableArticleComments:       true,
	TableCastingApplications:   true,
	TableMonthlyPayments:       true,
	TableAbsences:              true,
	TableForumThreads:          true,
	TableForumReplies:          true,
	TableSiteConfig:            true,
	TableAgencyInfo:            true,
	TableAgencyServices:        true,
	TableAgencyTimeline:        true,
	TableAgencyPartners:        true,
	TableAgencyAchievements:    true,
	TableSocialLinks:           true,
	TableNavLinks:              true,
	TablePagesContent:          true,
	TableSiteImages:            true,
	TableJuryMembers:           true,
	TableRegistrationStaff:     true,
	TableFashionDayReservation: true,
	TableBookingRequests:       true,
	TableContactMessages:       true,
	TableRecoveryRequests:      true,
	TableJuryScores:            true,
	TableModelDistinctions:     true,
	TableProfiles:              true,
	TableUserRoles:             true,
}

// Rows reads every row of a watched table and returns them as normalized
// (camelCase-keyed) records in insertion order.
func (db *DB) Rows(ctx context.Context, table string) ([]map[string]any, error) {
	if !watchedTables[table] {
		return nil, fmt.Errorf("unknown collection %q", table)
	}

	rows, err := db.Pool.Query(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf(errFailedReadCollectionFmt, table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	records := make([]map[string]any, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf(errFailedReadCollectionFmt, table, err)
		}

		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		records = append(records, normalize.ToInternal(row))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errFailedReadCollectionFmt, table, err)
	}

	return records, nil
}

// SingleRow reads a singleton table. It errors when the table holds zero or
// more than one row; callers decide whether that aborts or degrades.
func (db *DB) SingleRow(ctx context.Context, table string) (map[string]any, error) {
	records, err := db.Rows(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("collection %s: expected exactly one row, got %d", table, len(records))
	}
	return records[0], nil
}

// KeyValue folds a two-column key/value table into a flat map.
func (db *DB) KeyValue(ctx context.Context, table string) (map[string]string, error) {
	if !watchedTables[table] {
		return nil, fmt.Errorf("unknown collection %q", table)
	}

	rows, err := db.Pool.Query(ctx, "SELECT key, value FROM "+table)
	if err != nil {
		return nil, fmt.Errorf(errFailedReadCollectionFmt, table, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf(errFailedReadCollectionFmt, table, err)
		}
		out[k] = v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errFailedReadCollectionFmt, table, err)
	}

	return out, nil
}
