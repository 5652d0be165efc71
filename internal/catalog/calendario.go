package catalog

import (
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
	"github.com/sisgea/unispec/internal/tokens"
)

// Token sets of the calendario module
var (
	IntervaloDeTempo = tokens.For("IntervaloDeTempo")
	CalendarioLetivo = tokens.For("CalendarioLetivo")
	DiaCalendario    = tokens.For("DiaCalendario")
)

// CalendarioProvider registers the calendario module
func CalendarioProvider() *registry.Provider {
	return registry.NewProvider(func(ctx *registry.Context) {
		ctx.Add(IntervaloDeTempoProvider())
		ctx.Add(CalendarioLetivoProvider())
		ctx.Add(DiaCalendarioProvider())
	})
}

// IntervaloDeTempoEntity returns the IntervaloDeTempo entity
func IntervaloDeTempoEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "IntervaloDeTempo",
		Properties: schema.Props(
			schema.P("periodoInicio", schema.NewString(schema.WithFormat(schema.FormatTime), schema.Describe("Horário que o intervalo de tempo inicia."))),
			schema.P("periodoFim", schema.NewString(schema.WithFormat(schema.FormatTime), schema.Describe("Horário que o intervalo de tempo termina."))),
		),
	})
}

// IntervaloDeTempoProvider registers the IntervaloDeTempo entity, its views and its declarator
func IntervaloDeTempoProvider() *registry.Provider {
	set := IntervaloDeTempo
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := IntervaloDeTempoEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).View(set.Entity, "Visão completa de um IntervaloDeTempo."))
		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys("id", "periodoInicio", "periodoFim", "dateCreated", "dateUpdated", "dateDeleted")).
			View(set.Views.FindOneResult, "Visão FindOne de um IntervaloDeTempo."))

		// intervals are created implicitly by the schedule generator
		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{CRUD: declarator.CRUD{
			FindByID: declarator.Enabled(declarator.FindByID{
				Name:   set.Operations.FindByID,
				Input:  set.Views.FindOneInput,
				Output: set.Views.FindOneResult,
			}),
			DeleteByID: declarator.Disabled[declarator.DeleteByID](),
			Create:     declarator.Disabled[declarator.Create](),
			UpdateByID: declarator.Disabled[declarator.UpdateByID](),
		}}))
	})
}

// CalendarioLetivoEntity returns the CalendarioLetivo entity
func CalendarioLetivoEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "CalendarioLetivo",
		Properties: schema.Props(
			schema.P("nome", schema.NewString(schema.Describe("Nome do calendário letivo."), schema.MinLength(1))),
			schema.P("ano", schema.NewInteger(schema.Describe("Ano do calendário letivo."), schema.IntegerOnly(), schema.Positive())),
			schema.P("campus", schema.NewReference(Campus.Entity, schema.Describe("Campus ao qual o calendário letivo pertence."))),
			schema.P("ofertaFormacao", schema.NewReference(OfertaFormacao.Entity, schema.Describe("Oferta de formação do calendário letivo."))),
		),
	})
}

// CalendarioLetivoProvider registers the CalendarioLetivo entity, its views and its declarator
func CalendarioLetivoProvider() *registry.Provider {
	set := CalendarioLetivo
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := CalendarioLetivoEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"campus":         schema.Retarget(Campus.Views.FindOneResult),
				"ofertaFormacao": schema.Retarget(OfertaFormacao.Views.FindOneResult),
			}}).
			View(set.Entity, "Visão completa de um CalendarioLetivo."))

		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys("id", "nome", "ano", "campus", "ofertaFormacao", "dateCreated", "dateUpdated", "dateDeleted")).
			View(set.Views.FindOneResult, "Visão FindOne de um CalendarioLetivo."))

		create := ctx.View(schema.From(full).
			Pick(schema.Keys("nome", "ano", "campus", "ofertaFormacao")).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"campus":         schema.Retarget(Campus.Views.FindOneInput),
				"ofertaFormacao": schema.Retarget(OfertaFormacao.Views.FindOneInput),
			}}).
			View(set.Views.InputCreate, "Dados de entrada para a criação de um CalendarioLetivo."))

		ctx.View(inputUpdate(set, create, "Dados de entrada para a atualização de um CalendarioLetivo."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a CalendarioLetivos.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{
			CRUD: CRUD(set,
				declarator.F("campus.id", declarator.OpEq),
				declarator.F("ofertaFormacao.id", declarator.OpEq),
			),
		}))
	})
}

// DiaCalendarioEntity returns the DiaCalendario entity
func DiaCalendarioEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "DiaCalendario",
		Properties: schema.Props(
			schema.P("data", schema.NewString(schema.WithFormat(schema.FormatDate), schema.Describe("Data."))),
			schema.P("diaLetivo", schema.NewBoolean(schema.Describe("Define que o dia é letivo."))),
			schema.P("feriado", schema.NewBoolean(schema.Describe("Define que o dia é feriado."))),
			schema.P("calendario", schema.NewReference(CalendarioLetivo.Entity, schema.Nullable(), schema.Describe("Calendario."))),
		),
	})
}

// DiaCalendarioProvider registers the DiaCalendario entity, its views and its declarator
func DiaCalendarioProvider() *registry.Provider {
	set := DiaCalendario
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := DiaCalendarioEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"calendario": schema.Retarget(CalendarioLetivo.Views.FindOneResult),
			}}).
			View(set.Entity, "Visão completa de um DiaCalendario."))

		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys(
				"id",
				"data", "diaLetivo", "feriado",
				"calendario",
				"dateCreated", "dateUpdated", "dateDeleted",
			)).
			View(set.Views.FindOneResult, "Visão FindOne de um DiaCalendario."))

		create := ctx.View(schema.From(full).
			Pick(schema.Keys("data", "diaLetivo", "feriado", "calendario")).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"calendario": schema.Retarget(CalendarioLetivo.Views.FindOneInput),
			}}).
			View(set.Views.InputCreate, "Dados de entrada para a criação de um DiaCalendario."))

		ctx.View(inputUpdate(set, create, "Dados de entrada para a atualização de um DiaCalendario."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a DiaCalendarios.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{
			CRUD: CRUD(set, declarator.F("calendario.id", declarator.OpEq)),
		}))
	})
}

func findOneInput(set tokens.Set, full *schema.View) (*schema.View, error) {
	return schema.From(full).
		Pick(schema.Keys(schema.PropID)).
		View(set.Views.FindOneInput, "Dados de entrada para encontrar um "+string(set.Entity)+" por ID.")
}

func inputUpdate(set tokens.Set, create *schema.View, description string) (*schema.View, error) {
	return schema.From(create).Partial().View(set.Views.InputUpdate, description)
}
