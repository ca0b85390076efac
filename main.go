package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biosurv/merger/config"
	"github.com/biosurv/merger/errs"
	"github.com/biosurv/merger/log"
	"github.com/biosurv/merger/model"
	"github.com/biosurv/merger/pipeline"
	"github.com/biosurv/merger/template"
)

var (
	cfgPath string
	cfg     config.Config

	samplePath  string
	epiPath     string
	reportPath  string
	destination string
	modeName    string

	inputs model.OperatorInputs
)

func main() {
	defer log.Sync()
	if err := rootCmd().Execute(); err != nil {
		var e *errs.Error
		if errors.As(err, &e) {
			log.Errorf("%s: %s", e.Title(), e.Error())
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "merger",
		Short:         "Merge lab sample sheets, EpiInfo exports and MinKNOW run reports into a standard report",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cfg.LogFile != "" {
				log.InitFile(cfg.LogFile)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "merger.yaml", "optional YAML defaults file")
	root.AddCommand(actionCmd(model.ActionMerge), actionCmd(model.ActionUpdate), templateCmd())
	return root
}

func actionCmd(action model.Action) *cobra.Command {
	short := "Merge the inputs and fill in run constants"
	if action == model.ActionUpdate {
		short = "Reshape and validate the inputs, keeping existing values"
	}
	cmd := &cobra.Command{
		Use:   action.String(),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(action)
			if err != nil {
				return err
			}
			res, err := pipeline.Run(req)
			if err != nil {
				return err
			}
			log.Infof("%s: %s", res.Title, res.Message)
			return nil
		},
	}
	addFileFlags(cmd)
	addOperatorFlags(cmd)
	return cmd
}

func addFileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&samplePath, "samples", "", "sample sheet CSV")
	f.StringVar(&epiPath, "epi", "", "EpiInfo database export CSV (optional)")
	f.StringVar(&reportPath, "report", "", "MinKNOW run report HTML (optional)")
	f.StringVar(&destination, "dest", "", "output directory")
	f.StringVar(&modeName, "mode", "ddns", "schema mode: ddns or minion")
}

func addOperatorFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&inputs.Lab, "lab", "", "sequencing lab name")
	f.StringVar(&inputs.RunNumber, "run-number", "", "run number (yyyymmdd_xxx)")
	f.StringVar(&inputs.PipelineVersion, "pipeline-version", "", "analysis pipeline version")
	f.StringVar(&inputs.RTDate, "rt-date", "", "RT PCR date (yyyy-mm-dd)")
	f.StringVar(&inputs.VP1Date, "vp1-date", "", "VP1 PCR date (yyyy-mm-dd)")
	f.StringVar(&inputs.PCRMachine, "pcr-machine", "", "RT PCR machine")
	f.StringVar(&inputs.VP1PCRMachine, "vp1-pcr-machine", "", "VP1 PCR machine")
	f.StringVar(&inputs.RTPCRPrimers, "rt-primers", "", "RT PCR primers")
	f.StringVar(&inputs.VP1Primers, "vp1-primers", "", "VP1 primers")
	f.StringVar(&inputs.PositiveControl, "positive-control", "", "positive PCR control check")
	f.StringVar(&inputs.NegativeControl, "negative-control", "", "negative PCR control check")
	f.StringVar(&inputs.SeqKit, "seq-kit", "", "library preparation kit")
	f.StringVar(&inputs.FlowCellUses, "flow-cell-uses", "", "flow cell prior uses")
	f.StringVar(&inputs.FlowCellPores, "flow-cell-pores", "", "pores available at flow cell check")
	f.StringVar(&inputs.SeqHours, "seq-hours", "", "run duration in hours")
	f.StringVar(&inputs.FastaDate, "fasta-date", "", "fasta generation date (yyyy-mm-dd)")
}

// buildRequest applies the caller-side checks: required paths present,
// extensions match, defaults from the config file filled in.
func buildRequest(action model.Action) (pipeline.Request, error) {
	var req pipeline.Request
	if inputs.Lab == "" {
		inputs.Lab = cfg.Lab
	}
	if inputs.PipelineVersion == "" {
		inputs.PipelineVersion = cfg.PipelineVersion
	}
	if destination == "" {
		destination = cfg.Destination
	}
	if samplePath == "" {
		return req, errs.New(errs.InputMissing, "No sample file selected.")
	}
	if destination == "" {
		return req, errs.New(errs.InputMissing, "No destination selected.")
	}
	if !strings.HasSuffix(samplePath, ".csv") {
		return req, errs.New(errs.InvalidExtension,
			"Sample file selected is not a CSV file. Please change to CSV.")
	}
	if epiPath != "" && !strings.HasSuffix(epiPath, ".csv") {
		return req, errs.New(errs.InvalidExtension,
			"Epi Info file selected is not a CSV file. Please change to CSV.")
	}
	if reportPath != "" && !strings.HasSuffix(reportPath, ".html") {
		return req, errs.New(errs.InvalidExtension,
			"File selected is not a HTML file. Please change to HTML.")
	}
	mode, err := model.ParseMode(modeName)
	if err != nil {
		return req, err
	}
	return pipeline.Request{
		SamplePath:  samplePath,
		EpiPath:     epiPath,
		ReportPath:  reportPath,
		Destination: destination,
		Mode:        mode,
		Action:      action,
		Inputs:      inputs,
	}, nil
}

func templateCmd() *cobra.Command {
	dir := "."
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an empty sample sheet for the selected mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := model.ParseMode(modeName)
			if err != nil {
				return err
			}
			path, err := template.Write(dir, mode)
			if err != nil {
				return err
			}
			log.Infof("Template saved: %s", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&modeName, "mode", "ddns", "schema mode: ddns or minion")
	cmd.Flags().StringVar(&dir, "dest", ".", "output directory")
	return cmd
}
