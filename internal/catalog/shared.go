package catalog

import (
	"github.com/sisgea/unispec/internal/declarator"
	"github.com/sisgea/unispec/internal/registry"
	"github.com/sisgea/unispec/internal/schema"
	"github.com/sisgea/unispec/internal/tokens"
)

// Imagem is the token set of the shared image entity
var Imagem = tokens.For("Imagem")

// PaginatedResultView builds the list result of an entity: pagination
// metadata plus a data array of references to targetsTo.
func PaginatedResultView(name schema.Token, description string, targetsTo schema.Token) *schema.View {
	meta := schema.NewObject(schema.Props(
		schema.P("itemsPerPage", schema.NewInteger(schema.Describe("Quantidade de itens por página."), schema.IntegerOnly())),
		schema.P("totalItems", schema.NewInteger(schema.Describe("Total de itens."), schema.IntegerOnly())),
		schema.P("currentPage", schema.NewInteger(schema.Describe("Página atual."), schema.IntegerOnly(), schema.Positive())),
		schema.P("totalPages", schema.NewInteger(schema.Describe("Quantidade total de páginas."), schema.IntegerOnly())),
		schema.P("search", schema.NewString(schema.Describe("Termo textual da busca."), schema.Nullable())),
		schema.P("sortBy", schema.NewArray(
			schema.NewString(schema.Describe("Campo e direção da ordenação.")),
			schema.Describe("Ordenação."),
		)),
	), schema.Describe("Metadados da busca."))

	data := schema.NewArray(
		schema.NewReference(targetsTo, schema.Describe("Resultado da busca.")),
		schema.Describe("Resultados da busca."),
	)

	return schema.NewView(schema.ViewOptions{
		Name:        name,
		Description: description,
		Type: schema.NewObject(schema.Props(
			schema.P("meta", meta),
			schema.P("data", data),
		)),
	})
}

// CoverImage is the entity-side cover image property
func CoverImage() *schema.Reference {
	return schema.NewReference(Imagem.Entity, schema.Nullable(), schema.Describe("Imagem de capa."))
}

// CoverImageView is the view-side cover image property
func CoverImageView() *schema.Reference {
	return schema.NewReference(Imagem.Views.FindOneResult, schema.Nullable(), schema.Describe("Imagem de capa."))
}

// ProfileImage is the entity-side profile image property
func ProfileImage() *schema.Reference {
	return schema.NewReference(Imagem.Entity, schema.Nullable(), schema.Describe("Imagem de perfil."))
}

// ProfileImageView is the view-side profile image property
func ProfileImageView() *schema.Reference {
	return schema.NewReference(Imagem.Views.FindOneResult, schema.Nullable(), schema.Describe("Imagem de perfil."))
}

// Mime types accepted by image operations
var (
	mimeTypesRead  = []string{"image/jpeg"}
	mimeTypesWrite = []string{"image/jpeg", "image/png"}
)

// GetCoverImage describes the binary download of an entity's cover image
func GetCoverImage(set tokens.Set) declarator.Extra {
	return imageOperation(set, "getCoverImage", "GetCoverImage", "Obtêm a imagem de capa.", false)
}

// SetCoverImage describes the upload of an entity's cover image
func SetCoverImage(set tokens.Set) declarator.Extra {
	return imageOperation(set, "setCoverImage", "SetCoverImage", "Define a imagem de capa.", true)
}

// GetProfileImage describes the binary download of an entity's profile image
func GetProfileImage(set tokens.Set) declarator.Extra {
	return imageOperation(set, "getProfileImage", "GetProfileImage", "Obtêm a imagem de perfil.", false)
}

// SetProfileImage describes the upload of an entity's profile image
func SetProfileImage(set tokens.Set) declarator.Extra {
	return imageOperation(set, "setProfileImage", "SetProfileImage", "Define a imagem de perfil.", true)
}

func imageOperation(set tokens.Set, key, suffix, description string, upload bool) declarator.Extra {
	e := declarator.Extra{
		Key:         key,
		Name:        set.Operation(suffix),
		Description: description,
		Input:       set.Views.FindOneInput,
	}
	if upload {
		e.Attributes = map[string]any{
			"input.strategy":  "file",
			"input.mimeTypes": mimeTypesWrite,
		}
		return e
	}
	e.Attributes = map[string]any{
		"output.strategy":  "file",
		"output.mimeTypes": mimeTypesRead,
	}
	return e
}

// CRUD returns the standard operation set of an entity, wired to its
// standard views. filters configure the list operation.
func CRUD(set tokens.Set, filters ...declarator.Filter) declarator.CRUD {
	return declarator.CRUD{
		FindByID: declarator.Enabled(declarator.FindByID{
			Name:   set.Operations.FindByID,
			Input:  set.Views.FindOneInput,
			Output: set.Views.FindOneResult,
		}),
		DeleteByID: declarator.Enabled(declarator.DeleteByID{Name: set.Operations.DeleteByID}),
		Create: declarator.Enabled(declarator.Create{
			Name:  set.Operations.Create,
			Input: set.Views.InputCreate,
		}),
		UpdateByID: declarator.Enabled(declarator.UpdateByID{
			Name:  set.Operations.UpdateByID,
			Input: set.Views.InputUpdate,
		}),
		List: declarator.Enabled(declarator.List{
			Name:    set.Operations.List,
			View:    set.Views.FindAllResult,
			Filters: filters,
		}),
	}
}

// ImagemEntity is the stored image shared by every module
func ImagemEntity() *schema.Object {
	return schema.Entity(schema.EntityOptions{
		ID:          schema.IDUUID,
		Dated:       true,
		Description: "Imagem",
		Properties: schema.Props(
			schema.P("descricao", schema.NewString(schema.Describe("Descrição da imagem."), schema.Nullable())),
			schema.P("largura", schema.NewInteger(schema.Describe("Largura da imagem."), schema.Nullable(), schema.Positive())),
			schema.P("altura", schema.NewInteger(schema.Describe("Altura da imagem."), schema.Nullable(), schema.Positive())),
		),
	})
}

// SharedProvider registers the image entity and its read-only views
func SharedProvider() *registry.Provider {
	return registry.NewProvider(func(ctx *registry.Context) {
		entity := ImagemEntity()
		ctx.Add(entity)

		full := ctx.View(schema.From(entity).View(Imagem.Entity, "Visão completa de uma Imagem."))

		ctx.View(schema.From(full).
			Extends(schema.Patch{PartialOf: Imagem.Entity}).
			Pick(schema.Keys("id", "descricao", "largura", "altura", "dateCreated", "dateUpdated", "dateDeleted")).
			View(Imagem.Views.FindOneResult, "Visão FindOne de uma Imagem."))
	})
}
