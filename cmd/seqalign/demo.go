package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqalign/seqalign-go/pkg/seqalign"
)

// Alpha-hemoglobin chains for a panel of species, aligned against the
// human chain by the demo command.
const demoHumanName = "Homo Sapiens"

const demoHuman = "VLSPADKTNVKAAWGKVGAHAGEYGAEALERMFLSFPTTKTYFPHFDLSHGSAQVKGHGK" +
	"KVADALTNAVAHVDDMPNALSALSDLHAHKLRVDPVNFKLLSHCLLVTLAAHLPAEFTPA" +
	"VHASLDKFLASVSTVLTSKY"

var demoCandidates = []struct {
	name     string
	sequence string
}{
	{
		"Equus Caballus",
		"VLSAADKTNVKAAWSKVGGHAGEYGAEALERMFLGFPTTKTYFPHFDLSHGSAQVKAHGK" +
			"KVGDALTLAVGHLDDLPGALSNLSDLHAHKLRVDPVNFKLLSHCLLSTLAVHLPNDFTPA" +
			"VHASLDKFLSSVSTVLTSKYR",
	},
	{
		"Odocoileus Virginianus",
		"VLSAANKSNVKAAWGKVGGNAPAYGAQALQRMFLSFPTTKTYFPHFDLSHGSAQQKAHGQ" +
			"KVANALTKAQGHLNDLPGTLSNLSNLHAHKLRVNPVNFKLLSHSLLVTLASHLPTNFTPA" +
			"VHANLNKFLANDSTVLTSKYR",
	},
	{
		"Bos Taurus",
		"VLSAADKGNVKAAWGKVGGHAAEYGAEALERMFLSFPTTKTYFPHFDLSHGSAQVKGHGA" +
			"KVAAALTKAVEHLDDLPGALSELSDLHAHKLRVDPVNFKLLSHSLLVTLASHLPSDFTPA" +
			"VHASLDKFLANVSTVLTSKYR",
	},
	{
		"Sus Scrofa",
		"VLSAADKANVKAAWGKVGGQAGAHGAEALERMFLGFPTTKTYFPHFNLSHGSDQVKAHGQ" +
			"KVADALTKAVGHLDDLPGALSALSDLHAHKLRVDPVNFKLLSHCLLVTLAAHHPDDFNPS" +
			"VHASLDKFLANVSTVLTSKYR",
	},
	{
		"Chrysocyon Brachyurus",
		"VLSPADKTNIKSTWDKIGGHAGDYGGEALDRTFQSFPTTKTYFPHFDLSPGSAQVKAHGK" +
			"KVADALTTAVAHLDDLPGALSALSDLHAYKLRVDPVNFKLLSHCLLVTLACHHPTEFTPA" +
			"VHASLDKFFTAVSTVLTSKYR",
	},
	{
		"Gallus Gallus",
		"MLTAEDKKLIQQAWEKAASHQEEFGAEALTRMFTTYPQTKTYFPHFDLSPGSDQVRGHGK" +
			"KVLGALGNAVKNVDNLSQAMAELSNLHAYNLRVDPVNFKLLSQCIQVVLAVHMGKDYTPE" +
			"VHAAFDKFLSAVSAVLAEKYR",
	},
	{
		"Oncorhynchus Mykiss",
		"XSLTAKDKSVVKAFWGKISGKADVVGAEALGRMLTAYPQTKTYFSHWADLSPGSGPVKKH" +
			"GGIIMGAIGKAVGLMDDLVGGMSALSDLHAFKLRVDPGNFKILSHNILVTLAIHFPSDFT" +
			"PEVHIAVDKFLAAVSAALADKYR",
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Globally align human alpha-hemoglobin against a species panel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings()
		if err != nil {
			return err
		}

		sc := cfg.Scoring.Scoring()
		for _, candidate := range demoCandidates {
			result := seqalign.GlobalWith(demoHuman, candidate.sequence, sc)
			fmt.Fprint(cmd.OutOrStdout(),
				seqalign.FormatGlobal(result, demoHumanName, candidate.name, cfg.Report.MaxWidth))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
