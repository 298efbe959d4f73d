package maven

import (
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jfrog/jfrog-cli-core/v2/utils/coreutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

type PublicationSummary struct {
	RepositoryUrl  string
	RepositoryType RepositoryType
	GroupId        string
	ArtifactId     string
	Version        string
}

type TableRow struct {
	Metric string `col-name:"Metric"`
	Value  string `col-name:"Value"`
}

func (ps *PublicationSummary) Coordinates() string {
	return ps.GroupId + ":" + ps.ArtifactId + ":" + ps.Version
}

func (ps *PublicationSummary) TableRows() []TableRow {
	return []TableRow{
		{Metric: text.FgHiBlue.Sprint("Repository Url"), Value: text.FgGreen.Sprint(ps.RepositoryUrl)},
		{Metric: text.FgHiBlue.Sprint("Repository Type"), Value: text.FgGreen.Sprint(string(ps.RepositoryType))},
		{Metric: text.FgHiBlue.Sprint("Artifact"), Value: text.FgGreen.Sprint(ps.Coordinates())},
	}
}

func PrintPublicationSummary(ps *PublicationSummary) {
	if ps == nil {
		return
	}
	err := coreutils.PrintTableWithBorderless(ps.TableRows(), text.FgCyan.Sprint("Maven Publication"), "", "No publication found", false)
	if err != nil {
		log.Error("Failed to print the Maven publication summary table:", err)
		return
	}
	log.Output()
}
