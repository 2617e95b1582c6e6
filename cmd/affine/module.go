package main

import (
	"github.com/reusee/affine/affineconfigs"
	"github.com/reusee/affine/debugs"
	"github.com/reusee/affine/evals"
	"github.com/reusee/affine/logs"
	"github.com/reusee/affine/scripts"
	"github.com/reusee/affine/syntaxes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Configs  affineconfigs.Module
	Evals    evals.Module
	Syntaxes syntaxes.Module
	Scripts  scripts.Module
	Debugs   debugs.Module
}
