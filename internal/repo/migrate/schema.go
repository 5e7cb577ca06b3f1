// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_key", Type: field.TypeString, Size: 100},
		{Name: "format", Type: field.TypeEnum, Enums: []string{"single_select", "multi_select", "free_text"}},
		{Name: "option_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "free_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "recorded_by", Type: field.TypeUUID},
		{Name: "session_instrument_id", Type: field.TypeUUID},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_session_instruments_answers",
				Columns:    []*schema.Column{AnswersColumns[7]},
				RefColumns: []*schema.Column{SessionInstrumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_session_instrument_id_question_key",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[7], AnswersColumns[2]},
			},
		},
	}
	// FlowsColumns holds the columns for the "flows" table.
	FlowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "current_version_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// FlowsTable holds the schema information for the "flows" table.
	FlowsTable = &schema.Table{
		Name:       "flows",
		Columns:    FlowsColumns,
		PrimaryKey: []*schema.Column{FlowsColumns[0]},
	}
	// FlowVersionsColumns holds the columns for the "flow_versions" table.
	FlowVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt},
		{Name: "mandatory", Type: field.TypeBool, Default: false},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "flow_id", Type: field.TypeUUID},
	}
	// FlowVersionsTable holds the schema information for the "flow_versions" table.
	FlowVersionsTable = &schema.Table{
		Name:       "flow_versions",
		Columns:    FlowVersionsColumns,
		PrimaryKey: []*schema.Column{FlowVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flow_versions_flows_versions",
				Columns:    []*schema.Column{FlowVersionsColumns[6]},
				RefColumns: []*schema.Column{FlowsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flowversion_flow_id_version",
				Unique:  true,
				Columns: []*schema.Column{FlowVersionsColumns[6], FlowVersionsColumns[2]},
			},
		},
	}
	// InstrumentsColumns holds the columns for the "instruments" table.
	InstrumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "focus_area", Type: field.TypeString, Size: 100},
		{Name: "current_version_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// InstrumentsTable holds the schema information for the "instruments" table.
	InstrumentsTable = &schema.Table{
		Name:       "instruments",
		Columns:    InstrumentsColumns,
		PrimaryKey: []*schema.Column{InstrumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "instrument_focus_area",
				Unique:  false,
				Columns: []*schema.Column{InstrumentsColumns[6]},
			},
			{
				Name:    "instrument_is_active",
				Unique:  false,
				Columns: []*schema.Column{InstrumentsColumns[8]},
			},
		},
	}
	// InstrumentVersionsColumns holds the columns for the "instrument_versions" table.
	InstrumentVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "version", Type: field.TypeInt},
		{Name: "content", Type: field.TypeJSON},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "instrument_id", Type: field.TypeUUID},
	}
	// InstrumentVersionsTable holds the schema information for the "instrument_versions" table.
	InstrumentVersionsTable = &schema.Table{
		Name:       "instrument_versions",
		Columns:    InstrumentVersionsColumns,
		PrimaryKey: []*schema.Column{InstrumentVersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "instrument_versions_instruments_versions",
				Columns:    []*schema.Column{InstrumentVersionsColumns[5]},
				RefColumns: []*schema.Column{InstrumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "instrumentversion_instrument_id_version",
				Unique:  true,
				Columns: []*schema.Column{InstrumentVersionsColumns[5], InstrumentVersionsColumns[2]},
			},
		},
	}
	// ScreeningSessionsColumns holds the columns for the "screening_sessions" table.
	ScreeningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "initiator_id", Type: field.TypeUUID},
		{Name: "flow_version_id", Type: field.TypeUUID},
		{Name: "context_kind", Type: field.TypeEnum, Enums: []string{"patient_order", "group_session", "course_unit", "standalone"}, Default: "standalone"},
		{Name: "patient_order_id", Type: field.TypeUUID, Nullable: true},
		{Name: "group_session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "course_unit_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "skipped"}, Default: "in_progress"},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "destination", Type: field.TypeJSON, Nullable: true},
		{Name: "crisis", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ScreeningSessionsTable holds the schema information for the "screening_sessions" table.
	ScreeningSessionsTable = &schema.Table{
		Name:       "screening_sessions",
		Columns:    ScreeningSessionsColumns,
		PrimaryKey: []*schema.Column{ScreeningSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "screeningsession_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ScreeningSessionsColumns[3]},
			},
			{
				Name:    "screeningsession_patient_order_id",
				Unique:  false,
				Columns: []*schema.Column{ScreeningSessionsColumns[7]},
			},
			{
				Name:    "screeningsession_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ScreeningSessionsColumns[10], ScreeningSessionsColumns[2]},
			},
		},
	}
	// SessionInstrumentsColumns holds the columns for the "session_instruments" table.
	SessionInstrumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "instrument_version_id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "below_scoring_threshold", Type: field.TypeBool, Default: false},
		{Name: "crisis", Type: field.TypeBool, Default: false},
		{Name: "score", Type: field.TypeJSON, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// SessionInstrumentsTable holds the schema information for the "session_instruments" table.
	SessionInstrumentsTable = &schema.Table{
		Name:       "session_instruments",
		Columns:    SessionInstrumentsColumns,
		PrimaryKey: []*schema.Column{SessionInstrumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_instruments_screening_sessions_instruments",
				Columns:    []*schema.Column{SessionInstrumentsColumns[11]},
				RefColumns: []*schema.Column{ScreeningSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessioninstrument_session_id_position",
				Unique:  true,
				Columns: []*schema.Column{SessionInstrumentsColumns[11], SessionInstrumentsColumns[4]},
			},
		},
	}
	// TriagesColumns holds the columns for the "triages" table.
	TriagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "focus_area", Type: field.TypeString, Size: 100},
		{Name: "care_category", Type: field.TypeEnum, Enums: []string{"SUBCLINICAL", "COACHING", "PSYCHOTHERAPY", "PSYCHIATRY", "CRISIS_CARE"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "triage_group_id", Type: field.TypeUUID},
	}
	// TriagesTable holds the schema information for the "triages" table.
	TriagesTable = &schema.Table{
		Name:       "triages",
		Columns:    TriagesColumns,
		PrimaryKey: []*schema.Column{TriagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "triages_triage_groups_triages",
				Columns:    []*schema.Column{TriagesColumns[5]},
				RefColumns: []*schema.Column{TriageGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "triage_triage_group_id",
				Unique:  false,
				Columns: []*schema.Column{TriagesColumns[5]},
			},
		},
	}
	// TriageGroupsColumns holds the columns for the "triage_groups" table.
	TriageGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_order_id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"SYSTEM_COMPUTED", "CLINICIAN_OVERRIDE"}},
		{Name: "care_category", Type: field.TypeEnum, Enums: []string{"SUBCLINICAL", "COACHING", "PSYCHOTHERAPY", "PSYCHIATRY", "CRISIS_CARE"}},
		{Name: "safety_planning_status", Type: field.TypeEnum, Enums: []string{"NOT_INDICATED", "INDICATED"}, Default: "NOT_INDICATED"},
		{Name: "override_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeUUID},
	}
	// TriageGroupsTable holds the schema information for the "triage_groups" table.
	TriageGroupsTable = &schema.Table{
		Name:       "triage_groups",
		Columns:    TriageGroupsColumns,
		PrimaryKey: []*schema.Column{TriageGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triagegroup_patient_order_id",
				Unique:  false,
				Columns: []*schema.Column{TriageGroupsColumns[2]},
			},
			{
				Name:    "triagegroup_session_id",
				Unique:  false,
				Columns: []*schema.Column{TriageGroupsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		FlowsTable,
		FlowVersionsTable,
		InstrumentsTable,
		InstrumentVersionsTable,
		ScreeningSessionsTable,
		SessionInstrumentsTable,
		TriagesTable,
		TriageGroupsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = SessionInstrumentsTable
	FlowVersionsTable.ForeignKeys[0].RefTable = FlowsTable
	InstrumentVersionsTable.ForeignKeys[0].RefTable = InstrumentsTable
	SessionInstrumentsTable.ForeignKeys[0].RefTable = ScreeningSessionsTable
	TriagesTable.ForeignKeys[0].RefTable = TriageGroupsTable
}
