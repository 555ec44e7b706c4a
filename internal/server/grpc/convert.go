package grpc

import (
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// generationOptions converts wire options; nil means the defaults.
func generationOptions(o *pb.GenerationOptions) passgen.Options {
	if o == nil {
		return passgen.DefaultOptions()
	}
	return passgen.Options{
		Length:           int(o.GetLength()),
		IncludeUpper:     o.GetIncludeUpper(),
		IncludeLower:     o.GetIncludeLower(),
		IncludeDigits:    o.GetIncludeDigits(),
		IncludeSymbols:   o.GetIncludeSymbols(),
		ExcludeAmbiguous: o.GetExcludeAmbiguous(),
	}
}

func strengthResult(r strength.Result) *pb.StrengthResult {
	return &pb.StrengthResult{
		Score:       int32(r.Score),
		IsStrong:    r.IsStrong,
		Suggestions: r.Suggestions,
	}
}

func credential(v *models.CredentialView) *pb.Credential {
	c := &pb.Credential{
		Id:           v.ID,
		Title:        v.Title,
		LoginName:    v.LoginName,
		LoginEmail:   v.LoginEmail,
		Url:          v.URL,
		Notes:        v.Notes,
		IsFavorite:   v.IsFavorite,
		Category:     string(v.Category),
		HistoryCount: int32(v.HistoryCount),
		CreatedAt:    timestamppb.New(v.CreatedAt),
	}
	if v.ModifiedAt != nil {
		c.ModifiedAt = timestamppb.New(*v.ModifiedAt)
	}
	return c
}

func patchOf[T any](v *T) models.Patch[T] {
	if v == nil {
		return models.Absent[T]()
	}
	return models.Set(*v)
}

// credentialPatch maps proto3 presence onto the patch tri-state: an unset
// field is left alone, a set field is written, and an empty string clears
// an optional field. An empty category resets it to the default.
func credentialPatch(req *pb.UpdateCredentialRequest) models.CredentialPatch {
	p := models.CredentialPatch{
		Title:      patchOf(req.Title),
		LoginName:  patchOf(req.LoginName),
		LoginEmail: patchOf(req.LoginEmail),
		URL:        patchOf(req.Url),
		Notes:      patchOf(req.Notes),
		Secret:     patchOf(req.Secret),
		IsFavorite: patchOf(req.IsFavorite),
	}
	if req.Category != nil {
		if *req.Category == "" {
			p.Category = models.Clear[models.Category]()
		} else {
			p.Category = models.Set(models.Category(*req.Category))
		}
	}
	return p
}
