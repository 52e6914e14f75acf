// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/taibuivan/locallibrary/internal/platform/validate"
)

type person struct {
	Name  string
	Born  *time.Time
	Died  *time.Time
	Tags  []int
	Built bool
}

var personPipeline = validate.Pipeline[person]{
	Schema: validate.Schema{
		{Name: "name", Rules: []validate.Rule{
			validate.NotEmpty().WithKey("form.first_name_valid"),
			validate.Alphanumeric().WithKey("form.first_name_char"),
			validate.MaxLength(255),
		}},
		{Name: "born", Sanitize: validate.Trim, Rules: []validate.Rule{validate.OptionalDate()}},
		{Name: "died", Sanitize: validate.Trim, Rules: []validate.Rule{validate.OptionalDate(), validate.After("born")}},
		{Name: "tags", Multi: true, Rules: []validate.Rule{validate.IntList()}},
	},
	Build: func(values validate.Values) person {
		return person{
			Name:  values.Get("name"),
			Born:  values.Date("born"),
			Died:  values.Date("died"),
			Tags:  values.Ints("tags"),
			Built: true,
		}
	},
}

/*
TestPipeline_Success builds a typed candidate from a clean submission.
*/
func TestPipeline_Success(t *testing.T) {
	result := personPipeline.Run(validate.Raw{
		"name": "  Jane ",
		"born": "1775-12-16",
		"died": "1817-07-18",
		"tags": []string{"1", "2"},
	})

	require.True(t, result.OK())
	assert.NoError(t, result.Err())
	assert.Equal(t, "Jane", result.Candidate.Name)
	assert.Equal(t, []int{1, 2}, result.Candidate.Tags)
	require.NotNil(t, result.Candidate.Died)
	assert.True(t, result.Candidate.Died.After(*result.Candidate.Born))
}

/*
TestPipeline_CollectsEveryViolation verifies that no rule short-circuits.
*/
func TestPipeline_CollectsEveryViolation(t *testing.T) {
	result := personPipeline.Run(validate.Raw{
		"name": "",
		"born": "1817-07-18",
		"died": "1775-12-16",
	})

	require.False(t, result.OK())
	assert.False(t, result.Candidate.Built)

	keys := make([]string, 0, len(result.Violations))
	for _, violation := range result.Violations {
		keys = append(keys, violation.Field+":"+violation.Key)
	}
	assert.Equal(t, []string{
		"name:form.first_name_valid",
		"name:form.first_name_char",
		"died:form.date_after",
		"tags:form.int_list",
	}, keys)

	assert.Len(t, validate.FieldErrors(result.Err()), 4)
}

/*
TestPipeline_SanitizesBeforeRules escapes markup and keeps values for redisplay.
*/
func TestPipeline_SanitizesBeforeRules(t *testing.T) {
	result := personPipeline.Run(validate.Raw{
		"name": " <b>Jane</b> ",
		"tags": "1",
		"junk": "dropped",
	})

	require.False(t, result.OK())
	assert.Equal(t, "&lt;b&gt;Jane&lt;/b&gt;", result.Values.Get("name"))
	assert.Equal(t, []string{"1"}, result.Values.List("tags"))
	_, kept := result.Values["junk"]
	assert.False(t, kept)
}

/*
TestPipeline_ScalarFieldKeepsFirst verifies coercion of a list into a scalar field.
*/
func TestPipeline_ScalarFieldKeepsFirst(t *testing.T) {
	result := personPipeline.Run(validate.Raw{
		"name": []string{"Jane", "Emma"},
		"tags": "3",
	})

	require.True(t, result.OK())
	assert.Equal(t, "Jane", result.Candidate.Name)
}

// isoDate draws a calendar date between 1500 and 2100.
func isoDate(t *rapid.T, label string) time.Time {
	days := rapid.IntRange(0, 600*365).Draw(t, label)
	return time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

/*
TestPipeline_DateOrderingProperty checks that a death date passes iff it is strictly later.
*/
func TestPipeline_DateOrderingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		born := isoDate(t, "born")
		died := isoDate(t, "died")

		result := personPipeline.Run(validate.Raw{
			"name": "Jane",
			"born": born.Format(time.DateOnly),
			"died": died.Format(time.DateOnly),
			"tags": "1",
		})

		if result.OK() != died.After(born) {
			t.Fatalf("born=%s died=%s ok=%v", born, died, result.OK())
		}
	})
}

/*
TestPipeline_AbsentBirthProperty checks that any death date passes when the birth date is absent.
*/
func TestPipeline_AbsentBirthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		died := ""
		if rapid.Bool().Draw(t, "has_death") {
			died = isoDate(t, "died").Format(time.DateOnly)
		}

		result := personPipeline.Run(validate.Raw{"name": "Jane", "died": died, "tags": "1"})
		if !result.OK() {
			t.Fatalf("died=%q violations=%v", died, result.Violations)
		}
	})
}

/*
TestPipeline_SingleSelectionProperty checks that a scalar multi-select validates like a one-element list.
*/
func TestPipeline_SingleSelectionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tag := strconv.Itoa(rapid.IntRange(-1000, 1000).Draw(t, "tag"))

		scalar := personPipeline.Run(validate.Raw{"name": "Jane", "tags": tag})
		list := personPipeline.Run(validate.Raw{"name": "Jane", "tags": []string{tag}})

		if scalar.OK() != list.OK() || !scalar.OK() {
			t.Fatalf("tag=%s scalar=%v list=%v", tag, scalar.Violations, list.Violations)
		}
		if len(scalar.Candidate.Tags) != 1 || scalar.Candidate.Tags[0] != list.Candidate.Tags[0] {
			t.Fatalf("candidates differ: %v vs %v", scalar.Candidate.Tags, list.Candidate.Tags)
		}
	})
}

/*
TestPipeline_MissingRequiredProperty checks that omitting a required field always names it.
*/
func TestPipeline_MissingRequiredProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := validate.Raw{"name": "Jane", "tags": "1"}
		missing := rapid.SampledFrom([]string{"name", "tags"}).Draw(t, "missing")
		delete(raw, missing)

		result := personPipeline.Run(raw)
		if result.OK() || result.Candidate.Built {
			t.Fatalf("missing %s still produced a candidate", missing)
		}

		named := false
		for _, violation := range result.Violations {
			named = named || violation.Field == missing
		}
		if !named {
			t.Fatalf("missing %s not reported: %v", missing, result.Violations)
		}
	})
}
