package flow

import (
	"fmt"
	"strings"
)

// resolveFinishBranch determines the branch a finish action operates on.
// Resolution order: an explicit full branch name wins (it must carry the
// prefix, then must exist), then an explicit short name composed with the
// prefix, then an interactive choice, and a blank result fails.
func (e *Engine) resolveFinishBranch(kind, prefix, fullBranch, shortName string, interactive bool) (string, error) {
	switch {
	case fullBranch != "":
		if !strings.HasPrefix(fullBranch, prefix) {
			return "", resolutionErrorf("branch %q is not a %s branch (missing prefix %q)", fullBranch, kind, prefix)
		}
		if err := e.requireBranch(fullBranch); err != nil {
			return "", err
		}
		return fullBranch, nil
	case shortName != "":
		branch := prefix + shortName
		if err := e.requireBranch(branch); err != nil {
			return "", err
		}
		return branch, nil
	case interactive:
		return e.chooseBranch(kind, prefix)
	default:
		return "", resolutionErrorf("%s branch name to finish is blank", kind)
	}
}

// requireBranch fails when the branch does not exist locally.
func (e *Engine) requireBranch(name string) error {
	exists, err := e.git.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return resolutionErrorf("branch %q does not exist", name)
	}
	return nil
}

// requireBranchAbsent fails when the branch already exists. Start actions
// use it before creating their target branch.
func (e *Engine) requireBranchAbsent(name string) error {
	exists, err := e.git.BranchExists(name)
	if err != nil {
		return err
	}
	if exists {
		return resolutionErrorf("branch %q already exists", name)
	}
	return nil
}

// chooseBranch presents the branches under prefix and returns the selected
// one, preselecting the current branch when it is among them. A blank
// answer re-prompts.
func (e *Engine) chooseBranch(kind, prefix string) (string, error) {
	branches, err := e.git.ListBranches(prefix)
	if err != nil {
		return "", err
	}
	if len(branches) == 0 {
		return "", resolutionErrorf("there are no %s branches", kind)
	}
	def := ""
	current, err := e.git.CurrentBranch()
	if err != nil {
		return "", err
	}
	for _, b := range branches {
		if b == current {
			def = b
			break
		}
	}
	title := fmt.Sprintf("Which %s branch do you want to finish?", kind)
	for {
		choice, err := e.prompt.Choose(title, branches, def)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(choice) != "" {
			return choice, nil
		}
	}
}

// resolveTag determines the tag a support branch starts from: an explicit
// tag must exist, interactive mode asks over all tags, and otherwise the
// most recent tag is used.
func (e *Engine) resolveTag(explicitTag string, interactive bool) (string, error) {
	if explicitTag != "" {
		exists, err := e.git.TagExists(explicitTag)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", resolutionErrorf("tag %q does not exist", explicitTag)
		}
		return explicitTag, nil
	}
	if interactive {
		tags, err := e.git.ListTags()
		if err != nil {
			return "", err
		}
		if len(tags) == 0 {
			return "", resolutionErrorf("there are no tags to branch from")
		}
		for {
			choice, err := e.prompt.Choose("Which tag do you want the support branch to start from?", tags, tags[0])
			if err != nil {
				return "", err
			}
			if strings.TrimSpace(choice) != "" {
				return choice, nil
			}
		}
	}
	tag, err := e.git.LastTag()
	if err != nil {
		return "", err
	}
	if tag == "" {
		return "", resolutionErrorf("tag name is blank and the repository has no tags")
	}
	return tag, nil
}
