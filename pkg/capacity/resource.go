package capacity

import (
	"github.com/shirou/gopsutil/mem"
)

func virtualMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}

	return vm.Total, nil
}
