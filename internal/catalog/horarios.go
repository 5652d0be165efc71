package catalog

import (
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
	"github.com/sisgea/unispec/internal/tokens"
)

// Token sets of the horarios module
var (
	HorarioGerado               = tokens.For("HorarioGerado")
	DisponibilidadeProfessorDia = tokens.For("DisponibilidadeProfessorDia")
)

// HorariosProvider registers the horarios module
func HorariosProvider() *registry.Provider {
	return registry.NewProvider(func(ctx *registry.Context) {
		ctx.Add(HorarioGeradoProvider())
		ctx.Add(DisponibilidadeProfessorDiaProvider())
	})
}

// HorarioGeradoEntity returns the HorarioGerado entity
func HorarioGeradoEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "HorarioGerado",
		Properties: schema.Props(
			schema.P("status", schema.NewString(schema.Describe("Status do horário gerado."), schema.Nullable())),
			schema.P("tipo", schema.NewString(schema.Describe("Tipo do horário gerado."), schema.Nullable())),
			schema.P("dataGeracao", schema.NewString(schema.WithFormat(schema.FormatDateTime), schema.Describe("Data em que o horário foi gerado."), schema.Nullable())),
			schema.P("vigenciaInicio", schema.NewString(schema.WithFormat(schema.FormatDate), schema.Describe("Início da vigência da preferência de agendamento."), schema.Nullable())),
			schema.P("vigenciaFim", schema.NewString(schema.WithFormat(schema.FormatDate), schema.Describe("Fim da vigência da preferência de agendamento."), schema.Nullable())),
			schema.P("calendario", schema.NewReference(CalendarioLetivo.Entity, schema.Describe("calendário."))),
		),
	})
}

// HorarioGeradoProvider registers the HorarioGerado entity, its views and its declarator
func HorarioGeradoProvider() *registry.Provider {
	set := HorarioGerado
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := HorarioGeradoEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"calendario": schema.Retarget(CalendarioLetivo.Views.FindOneResult),
			}}).
			View(set.Entity, "Horário gerado."))

		ctx.View(findOneInput(set, full))
		result, err := schema.From(full).
			Pick(schema.Keys(
				"id",
				"status", "tipo", "dataGeracao", "vigenciaInicio", "vigenciaFim",
				"calendario",
				"dateCreated", "dateUpdated", "dateDeleted",
			)).
			Object()
		if err != nil {
			ctx.Fail(err)
		} else {
			ctx.Add(schema.NewView(schema.ViewOptions{
				Name:        set.Views.FindOneResult,
				Description: "Visão FindOne de um Horario Gerado.",
				PartialOf:   set.Entity,
				Type:        result,
			}))
		}

		create := ctx.View(schema.From(full).
			Pick(schema.Keys("status", "tipo", "dataGeracao", "vigenciaInicio", "vigenciaFim", "calendario")).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"calendario": schema.Retarget(CalendarioLetivo.Views.FindOneInput),
			}}).
			View(set.Views.InputCreate, "Dados de entrada para a criação de um Horario Gerado."))

		ctx.View(inputUpdate(set, create, "Dados de entrada para a atualização de um Horario Gerado."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a Horarios Gerados.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{CRUD: CRUD(set)}))
	})
}

// DisponibilidadeProfessorDiaEntity returns the DisponibilidadeProfessorDia entity
func DisponibilidadeProfessorDiaEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "DisponibilidadeProfessorDia",
		Properties: schema.Props(
			schema.P("diaSemanaIso", schema.NewInteger(schema.Describe("Dia da semana."), schema.IntegerOnly(), schema.Min(1), schema.Max(7))),
			schema.P("intervaloDeTempo", schema.NewReference(IntervaloDeTempo.Entity, schema.Describe("Intervalo de tempo."))),
			schema.P("disponibilidade", schema.NewReference(DisponibilidadeProfessor.Entity, schema.Describe("Disponibilidade do professor."))),
		),
	})
}

// DisponibilidadeProfessorDiaProvider registers the DisponibilidadeProfessorDia entity, its views and its declarator
func DisponibilidadeProfessorDiaProvider() *registry.Provider {
	set := DisponibilidadeProfessorDia
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := DisponibilidadeProfessorDiaEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).
			Extends(schema.Patch{Properties: map[string]schema.FieldPatch{
				"intervaloDeTempo": schema.Retarget(IntervaloDeTempo.Views.FindOneResult),
				"disponibilidade":  schema.Retarget(DisponibilidadeProfessor.Views.FindOneResult),
			}}).
			View(set.Entity, "Disponibilidade dia do professor."))

		ctx.View(findOneInput(set, full))
		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: set.Entity}).
			Pick(schema.Keys("id", "diaSemanaIso", "intervaloDeTempo", "disponibilidade", "dateCreated", "dateUpdated", "dateDeleted")).
			View(set.Views.FindOneResult, "Visão FindOne de uma DisponibilidadeProfessorDia."))
		ctx.Add(PaginatedResultView(set.Views.FindAllResult, "Resultados da busca a DisponibilidadeProfessorDias.", set.Views.FindOneResult))

		ctx.Add(declarator.Compile(set.Entity, declarator.Operations{CRUD: declarator.CRUD{
			FindByID: declarator.Enabled(declarator.FindByID{
				Name:   set.Operations.FindByID,
				Input:  set.Views.FindOneInput,
				Output: set.Views.FindOneResult,
			}),
			List: declarator.Enabled(declarator.List{
				Name: set.Operations.List,
				View: set.Views.FindAllResult,
				Filters: []declarator.Filter{
					declarator.F("disponibilidade.id", declarator.OpEq),
					declarator.F("diaSemanaIso", declarator.OpEq, declarator.OpIn),
				},
			}),
		}}))
	})
}
